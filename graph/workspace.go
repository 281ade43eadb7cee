package graph

// Workspace is a named collection of Chains, adapted from the teacher's
// Project (a named collection of Packages): an indexed accessor over a
// list built once at load time, used by package config to group the
// chains loaded from a single declarative source.
type Workspace struct {
	Name      string
	Chains    []*Chain
	chainByID map[string]int
}

// NewWorkspace builds a Workspace and indexes its Chains by id.
func NewWorkspace(name string, chains []*Chain) *Workspace {
	w := &Workspace{Name: name, Chains: chains}
	w.index()
	return w
}

func (w *Workspace) index() {
	w.chainByID = make(map[string]int, len(w.Chains))
	for i, c := range w.Chains {
		w.chainByID[c.ID] = i
	}
}

// GetChain retrieves a Chain by id, or nil if the Workspace has none.
func (w *Workspace) GetChain(id string) *Chain {
	if w.chainByID == nil {
		return nil
	}
	if idx, ok := w.chainByID[id]; ok && idx < len(w.Chains) {
		return w.Chains[idx]
	}
	return nil
}

// Add appends a Chain to the Workspace, re-indexing it.
func (w *Workspace) Add(c *Chain) {
	w.Chains = append(w.Chains, c)
	w.index()
}

// ChainHash returns the content hash of the Chain registered under id,
// and whether a Chain was found under that id at all. Two Workspaces
// (or two loads of the same one) agree on a chain's content if and only
// if their ChainHash values for that id match.
func (w *Workspace) ChainHash(id string) (hash uint64, found bool, err error) {
	c := w.GetChain(id)
	if c == nil {
		return 0, false, nil
	}
	hash, err = c.Hash()
	return hash, true, err
}

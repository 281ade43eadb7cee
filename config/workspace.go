package config

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	"github.com/neria05/fury/graph"
	"github.com/neria05/fury/registry"
)

// WorkspaceDef names the chain manifests that make up one workspace,
// each loaded independently via Load and grouped under Name.
type WorkspaceDef struct {
	Name      string   `yaml:"name"`
	ChainURLs []string `yaml:"chains"`
}

// LoadWorkspace downloads def's manifest from url, then downloads and
// builds each chain it names, in order, against nodes.
func LoadWorkspace(ctx context.Context, fs afs.Service, url string, nodes *registry.Registry[*graph.Node]) (*graph.Workspace, error) {
	content, err := fs.DownloadWithURL(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("config: reading workspace manifest %q: %w", url, err)
	}

	var def WorkspaceDef
	if err := yaml.Unmarshal(content, &def); err != nil {
		return nil, fmt.Errorf("config: parsing workspace manifest %q: %w", url, err)
	}

	chains := make([]*graph.Chain, 0, len(def.ChainURLs))
	for _, chainURL := range def.ChainURLs {
		c, err := Load(ctx, fs, chainURL, nodes)
		if err != nil {
			return nil, err
		}
		chains = append(chains, c)
	}

	return graph.NewWorkspace(def.Name, chains), nil
}

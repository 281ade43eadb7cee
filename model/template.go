// Package model implements Fury's AI-action node body (spec.md §4.E, §6):
// binding a model id, model parameters, and a prompt template to a call
// against an external model provider, the engine's only collaborator for
// dispatching to a large-language model.
package model

// Message is one role-tagged turn of a chat-completion template body,
// e.g. {Role: "system", Template: "You are {{ .persona }}"}.
type Message struct {
	Role     string
	Template string
}

// TemplateBody is either a single text-completion template or an
// ordered sequence of role-tagged chat messages (spec.md §6); exactly
// one of Text or Messages should be set.
type TemplateBody struct {
	Text     string
	Messages []Message
}

// IsChat reports whether this body renders as a chat-completion message
// sequence rather than a single text completion.
func (b TemplateBody) IsChat() bool { return len(b.Messages) > 0 }

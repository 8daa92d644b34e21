// Package cli builds the argument list handed to the external patcher
// command line.
package cli

// ArgsBuilder collects include/exclude decisions and renders them as
// "-i name" / "-e name" argument pairs for the patcher CLI. Repeated
// calls for the same name are no-ops, so duplicate emissions from the
// selection filter are harmless. First-call order is preserved.
type ArgsBuilder struct {
	includes []string
	excludes []string
	seen     map[string]bool
}

// NewArgsBuilder creates an empty ArgsBuilder.
func NewArgsBuilder() *ArgsBuilder {
	return &ArgsBuilder{seen: make(map[string]bool)}
}

// Include records a patch to be passed with -i.
func (b *ArgsBuilder) Include(name string) {
	if b.seen[name] {
		return
	}
	b.seen[name] = true
	b.includes = append(b.includes, name)
}

// Exclude records a patch to be passed with -e.
func (b *ArgsBuilder) Exclude(name string) {
	if b.seen[name] {
		return
	}
	b.seen[name] = true
	b.excludes = append(b.excludes, name)
}

// Includes returns the included patch names in first-call order.
func (b *ArgsBuilder) Includes() []string {
	return append([]string(nil), b.includes...)
}

// Excludes returns the excluded patch names in first-call order.
func (b *ArgsBuilder) Excludes() []string {
	return append([]string(nil), b.excludes...)
}

// Args renders the collected decisions as CLI arguments, includes
// first.
func (b *ArgsBuilder) Args() []string {
	args := make([]string, 0, 2*(len(b.includes)+len(b.excludes)))
	for _, name := range b.includes {
		args = append(args, "-i", name)
	}
	for _, name := range b.excludes {
		args = append(args, "-e", name)
	}
	return args
}

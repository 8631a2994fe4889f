package domain

// Invocation is a fully resolved native-build tool command.
type Invocation struct {
	Tool        string
	Args        []string
	WorkingDir  string
	Environment map[string]string
}

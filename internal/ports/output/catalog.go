package output

// Catalog is the fixed mapping from language code to greeting template.
type Catalog interface {
	// Lookup returns the template stored for an exact, case-sensitive code.
	Lookup(code string) (template string, ok bool)
	// Languages returns every code in the catalog exactly once.
	Languages() []string
}

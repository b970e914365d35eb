package auth

import "fmt"

// Access is the capability an operation requires.
type Access int

const (
	// Protected is the zero value: anything not declared public needs a token.
	Protected Access = iota
	Public
)

func (a Access) String() string {
	if a == Public {
		return "public"
	}
	return "protected"
}

// Rule declares the access of a single named operation.
type Rule struct {
	Name   string
	Access Access
}

// Policy is an immutable operation-name to Access table.
type Policy struct {
	table map[string]Access
}

// NewPolicy builds a policy. Declaring the same name twice is an error even
// when both declarations agree.
func NewPolicy(rules ...Rule) (*Policy, error) {
	table := make(map[string]Access, len(rules))
	for _, r := range rules {
		if r.Name == "" {
			return nil, fmt.Errorf("auth: policy rule with empty operation name")
		}
		if _, dup := table[r.Name]; dup {
			return nil, fmt.Errorf("auth: operation %q declared twice", r.Name)
		}
		table[r.Name] = r.Access
	}
	return &Policy{table: table}, nil
}

// Access returns the declared access for name. Unknown names are Protected.
func (p *Policy) Access(name string) Access {
	return p.table[name]
}

// AllPublic reports whether a request naming operations may proceed without
// a token: there must be at least one operation and every one must be Public.
func (p *Policy) AllPublic(operations []string) bool {
	if len(operations) == 0 {
		return false
	}
	for _, op := range operations {
		if p.Access(op) != Public {
			return false
		}
	}
	return true
}

// PublicOperations lists the names declared Public.
func (p *Policy) PublicOperations() []string {
	var out []string
	for name, a := range p.table {
		if a == Public {
			out = append(out, name)
		}
	}
	return out
}

package dashboard

// Role is the dashboard mode switch. A family member sees the full set of
// controls; a patient sees a reduced one.
type Role string

const (
	Patient Role = "patient"
	Family  Role = "family"
)

func ValidRole(r Role) bool {
	return r == Patient || r == Family
}

// Op is one of the four mutations a widget store supports.
type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
	OpToggle Op = "toggle"
)

// Policy decides which mutations each mode may perform on one widget kind.
// Family mode is always unrestricted; only the patient set varies.
type Policy struct {
	patient map[Op]bool
}

// PatientMay builds a policy that lets patient mode run exactly the given
// operations. Family mode may run everything.
func PatientMay(ops ...Op) Policy {
	m := make(map[Op]bool, len(ops))
	for _, op := range ops {
		m[op] = true
	}
	return Policy{patient: m}
}

func (p Policy) Allows(role Role, op Op) bool {
	if role == Family {
		return true
	}
	return p.patient[op]
}

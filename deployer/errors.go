package deployer

import "fmt"

////////////////////////////////////////////////////////////////////////////////
// Tagged errors: stable machine-readable kinds + human messages
////////////////////////////////////////////////////////////////////////////////

// Kind is a stable machine-readable error tag. Tools match on kinds, humans
// read messages; neither side should need the other.
type Kind string

const (
	// input validation
	KindBlankField     Kind = "blank_field"
	KindOutOfRange     Kind = "out_of_range"
	KindBadAddress     Kind = "bad_address"
	KindBadCID         Kind = "bad_cid"
	KindUsernameLength Kind = "username_length"
	KindUsernameChars  Kind = "username_chars"

	// state invariants
	KindCycle            Kind = "hierarchy_cycle"
	KindNoRoot           Kind = "no_root_role"
	KindNoRoles          Kind = "no_roles"
	KindTooManyRoles     Kind = "too_many_roles"
	KindRoleNameBlank    Kind = "role_name_blank"
	KindDuplicateRole    Kind = "duplicate_role_name"
	KindVouchQuorum      Kind = "vouching_quorum_nonpositive"
	KindVoucherRange     Kind = "voucher_out_of_range"
	KindAdminRange       Kind = "admin_out_of_range"
	KindSelfAdmin        Kind = "self_admin"
	KindWeightSum        Kind = "weights_sum"
	KindDurationRange    Kind = "duration_out_of_range"
	KindSliceSum         Kind = "class_slices_sum"
	KindNoClasses        Kind = "no_voting_classes"
	KindTooManyClasses   Kind = "too_many_voting_classes"
	KindUnknownTemplate  Kind = "unknown_template"
	KindUnknownVariation Kind = "unknown_variation"

	// capacity
	KindAmountOverflow Kind = "amount_overflow"

	// dependency missing
	KindRegistryMissing Kind = "registry_missing"

	// reducer refusals (recorded in state, never raised)
	KindLastRole  Kind = "cannot_remove_last_role"
	KindLastClass Kind = "cannot_remove_last_class"
	KindRoleCap   Kind = "role_cap_reached"
	KindClassCap  Kind = "class_cap_reached"
)

// Error is the tagged error carried by every fallible operation. Role is the
// index of the offending role where one applies, -1 otherwise.
type Error struct {
	Kind Kind
	Msg  string
	Role int
}

// Error satisfies the error interface with the plain human message.
func (e *Error) Error() string { return e.Msg }

// errf builds a non-role error with a formatted message.
func errf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Role: -1}
}

// roleErrf is errf with the offending role index attached.
func roleErrf(kind Kind, role int, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Role: role}
}

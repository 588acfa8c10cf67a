package deployer

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mr-tron/base58"
)

////////////////////////////////////////////////////////////////////////////////
// Validator: whole-state structural report + input format checks
////////////////////////////////////////////////////////////////////////////////

// Report is the aggregated validation result. Errors are accumulated in a
// single pass and returned together, never raised one at a time.
type Report struct {
	OK     bool
	Errors []*Error
}

// Validate walks the whole state and collects every structural violation.
func Validate(s State) Report {
	errs := []*Error{}

	if strings.TrimSpace(s.Org.Name) == "" {
		errs = append(errs, errf(KindBlankField, "organization name is required"))
	}
	if strings.TrimSpace(s.Org.Description) == "" {
		errs = append(errs, errf(KindBlankField, "organization description is required"))
	}

	switch {
	case len(s.Roles) == 0:
		errs = append(errs, errf(KindNoRoles, "at least one role is required"))
	case len(s.Roles) > MaxRoles:
		errs = append(errs, errf(KindTooManyRoles, "at most %d roles are supported, got %d", MaxRoles, len(s.Roles)))
	}

	seenNames := map[string]int{}
	for i, r := range s.Roles {
		if strings.TrimSpace(r.Name) == "" {
			errs = append(errs, roleErrf(KindRoleNameBlank, i, "role %d has a blank name", i))
			continue
		}
		lower := strings.ToLower(r.Name)
		if first, dup := seenNames[lower]; dup {
			errs = append(errs, roleErrf(KindDuplicateRole, i, "duplicate role name %q (roles %d and %d)", r.Name, first, i))
		} else {
			seenNames[lower] = i
		}
	}

	if len(s.Roles) > 0 {
		errs = append(errs, ValidateHierarchy(s.Roles)...)
	}

	switch {
	case len(s.Voting.Classes) == 0:
		errs = append(errs, errf(KindNoClasses, "at least one voting class is required"))
	case len(s.Voting.Classes) > MaxVotingClasses:
		errs = append(errs, errf(KindTooManyClasses, "at most %d voting classes are supported, got %d", MaxVotingClasses, len(s.Voting.Classes)))
	}
	if len(s.Voting.Classes) > 0 {
		sum := 0
		for _, c := range s.Voting.Classes {
			sum += c.SlicePct
		}
		if sum != 100 {
			errs = append(errs, errf(KindSliceSum, "voting class slices do not sum to 100 (got %d)", sum))
		}
	}

	return Report{OK: len(errs) == 0, Errors: errs}
}

// ErrorMap flattens a report into the state's error-map shape, keyed by kind.
func (r Report) ErrorMap() map[string]string {
	out := make(map[string]string, len(r.Errors))
	for _, e := range r.Errors {
		if _, exists := out[string(e.Kind)]; !exists {
			out[string(e.Kind)] = e.Msg
		}
	}
	return out
}

// --- input format validators (§6 formats) ---

// Username bounds.
const (
	usernameMinLen = 3
	usernameMaxLen = 32
)

// ValidateUsername enforces 3..32 characters, alphanumerics and underscore.
func ValidateUsername(name string) *Error {
	if len(name) < usernameMinLen {
		return errf(KindUsernameLength, "username must be at least %d characters", usernameMinLen)
	}
	if len(name) > usernameMaxLen {
		return errf(KindUsernameLength, "username must be at most %d characters", usernameMaxLen)
	}
	for _, c := range name {
		ok := c == '_' ||
			(c >= '0' && c <= '9') ||
			(c >= 'a' && c <= 'z') ||
			(c >= 'A' && c <= 'Z')
		if !ok {
			return errf(KindUsernameChars, "username may only contain letters, digits and underscore")
		}
	}
	return nil
}

// Proposal duration bounds in minutes (30 days max).
const (
	durationMinMinutes = 1
	durationMaxMinutes = 43200
)

// ValidateProposalDuration enforces the 1..43200 minute window.
func ValidateProposalDuration(minutes int) *Error {
	if minutes < durationMinMinutes || minutes > durationMaxMinutes {
		return errf(KindDurationRange, "proposal duration must be between %d and %d minutes, got %d", durationMinMinutes, durationMaxMinutes, minutes)
	}
	return nil
}

// ValidateVoteWeights checks a multi-option vote: integer weights in [0,100]
// summing to exactly 100.
func ValidateVoteWeights(weights []int) *Error {
	sum := 0
	for _, w := range weights {
		if w < 0 || w > 100 {
			return errf(KindOutOfRange, "vote weight %d is out of range [0,100]", w)
		}
		sum += w
	}
	if sum != 100 {
		return errf(KindWeightSum, "weights do not sum to 100 (got %d)", sum)
	}
	return nil
}

// ValidateAddress checks a 20-byte hex address.
func ValidateAddress(addr string) *Error {
	if !common.IsHexAddress(addr) {
		return errf(KindBadAddress, "malformed address %q", addr)
	}
	return nil
}

// CIDv0 shape: base58btc, starts with Qm, 46 characters, decodes to the
// 2-byte multihash prefix 0x12 0x20 plus a 32-byte sha256 digest.
const cidV0Len = 46

// ValidateCID checks an IPFS CIDv0 string.
func ValidateCID(cid string) *Error {
	if len(cid) != cidV0Len || !strings.HasPrefix(cid, "Qm") {
		return errf(KindBadCID, "malformed CIDv0 %q: want 46 chars starting with Qm", cid)
	}
	raw, err := base58.Decode(cid)
	if err != nil {
		return errf(KindBadCID, "malformed CIDv0 %q: %v", cid, err)
	}
	if len(raw) != 34 || raw[0] != 0x12 || raw[1] != 0x20 {
		return errf(KindBadCID, "malformed CIDv0 %q: not a sha2-256 multihash", cid)
	}
	return nil
}

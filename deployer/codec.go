package deployer

import (
	"bytes"
	"encoding/binary"
)

////////////////////////////////////////////////////////////////////////////////
// Deterministic binary encoding of the deployment plan
////////////////////////////////////////////////////////////////////////////////

type binWriter struct {
	buf bytes.Buffer
}

// newWriter spins up a fresh writer so we dont leak old bytes between encodes.
func newWriter() *binWriter { return &binWriter{} }

// bytes returns the accumulated buffer, tiny helper but keeps code tidy.
func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

// writeBool squashes bools into a single byte flag for deterministic payloads.
func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// writeUint32 writes big endian numbers so tooling can read them without guessing.
func (w *binWriter) writeUint32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

// writeUint64 mirrors writeUint32 for the wider fields.
func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// writeVarUint uses varints to keep counts and lens compact.
func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// writeString prefixes its length then dumps UTF-8 directly.
func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

// writeBytes is writeString for raw byte fields (role names on the wire).
func (w *binWriter) writeBytes(b []byte) {
	w.writeVarUint(uint64(len(b)))
	w.buf.Write(b)
}

// writeU256 always emits the full 32 bytes so field offsets stay fixed.
func (w *binWriter) writeU256(v interface{ Bytes32() [32]byte }) {
	b := v.Bytes32()
	w.buf.Write(b[:])
}

func encodeClass(w *binWriter, c *HybridClassParams) {
	w.buf.WriteByte(c.Strategy)
	w.buf.WriteByte(c.SlicePct)
	w.writeBool(c.Quadratic)
	w.writeU256(c.MinBalance)
	w.buf.Write(c.Asset.Bytes())
	w.writeVarUint(uint64(len(c.HatIDs)))
	for _, h := range c.HatIDs {
		w.writeU256(h)
	}
}

func encodeRole(w *binWriter, r *RoleParams) {
	w.writeBytes(r.Name)
	w.writeString(r.Image)
	w.writeBool(r.CanVote)
	w.writeBool(r.Vouching.Enabled)
	w.writeUint64(r.Vouching.Quorum)
	w.writeUint64(r.Vouching.VoucherRoleIndex)
	w.writeBool(r.Vouching.CombineWithHierarchy)
	w.writeBool(r.Defaults.Eligible)
	w.writeBool(r.Defaults.InStanding)
	w.writeU256(r.AdminRoleIndex)
	w.writeBool(r.Distribution.MintToDeployer)
	w.writeBool(r.Distribution.MintToExecutor)
	w.writeVarUint(uint64(len(r.Distribution.AdditionalAddresses)))
	for _, a := range r.Distribution.AdditionalAddresses {
		w.buf.Write(a.Bytes())
	}
	w.writeVarUint(uint64(len(r.Distribution.AdditionalUsernames)))
	for _, u := range r.Distribution.AdditionalUsernames {
		w.writeString(u)
	}
	w.writeUint64(r.HatConfig.MaxSupply)
	w.writeBool(r.HatConfig.MutableHat)
}

func encodeAssignments(w *binWriter, a *RoleAssignments) {
	w.writeUint32(a.QuickJoinBitmap)
	w.writeUint32(a.TokenMemberBitmap)
	w.writeUint32(a.TokenApproverBitmap)
	w.writeUint32(a.TaskCreatorBitmap)
	w.writeUint32(a.EducationCreatorBitmap)
	w.writeUint32(a.EducationMemberBitmap)
	w.writeUint32(a.HybridProposalCreatorBitmap)
	w.writeUint32(a.DDVotingBitmap)
	w.writeUint32(a.DDCreatorBitmap)
}

// EncodeBlueprint renders the blueprint into its deterministic binary form.
// Equal blueprints always produce byte-identical output; test fixtures and
// the external ABI layer both depend on that.
func EncodeBlueprint(bp *Blueprint) []byte {
	w := newWriter()
	w.buf.Write(bp.OrgID[:])
	w.writeString(bp.OrgName)
	w.buf.Write(bp.RegistryAddr.Bytes())
	w.buf.Write(bp.DeployerAddress.Bytes())
	w.writeString(bp.DeployerUsername)
	w.writeBool(bp.AutoUpgrade)
	w.buf.WriteByte(bp.HybridQuorumPct)
	w.buf.WriteByte(bp.DDQuorumPct)
	w.writeVarUint(uint64(len(bp.HybridClasses)))
	for i := range bp.HybridClasses {
		encodeClass(w, &bp.HybridClasses[i])
	}
	w.writeVarUint(uint64(len(bp.DDInitialTargets)))
	for _, t := range bp.DDInitialTargets {
		w.buf.Write(t.Bytes())
	}
	w.writeVarUint(uint64(len(bp.Roles)))
	for i := range bp.Roles {
		encodeRole(w, &bp.Roles[i])
	}
	encodeAssignments(w, &bp.RoleAssignments)
	return w.bytes()
}

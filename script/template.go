package script

// Class is an enumeration for the list of standard types of script.
type Class byte

// Classes of script payment known about in the blockchain.
const (
	NonStandardTy         Class = iota // None of the recognized forms.
	PubKeyHashTy                       // Pay pubkey hash.
	ScriptHashTy                       // Pay to script hash.
	WitnessV0PubKeyHashTy              // Pay witness pubkey hash.
	WitnessV0ScriptHashTy              // Pay to witness script hash.
	MultiSigTy                         // Multi signature.
)

var classToName = []string{
	NonStandardTy:         "nonstandard",
	PubKeyHashTy:          "pubkeyhash",
	ScriptHashTy:          "scripthash",
	WitnessV0PubKeyHashTy: "witness_v0_keyhash",
	WitnessV0ScriptHashTy: "witness_v0_scripthash",
	MultiSigTy:            "multisig",
}

// String implements the Stringer interface by returning the name of
// the enum script class. If the enum is invalid then "Invalid" will be
// returned.
func (c Class) String() string {
	if int(c) >= len(classToName) {
		return "Invalid"
	}
	return classToName[c]
}

// Params holds the values a template commits to. Hash based templates only
// set Hash, the multisig template only sets M and PubKeys.
type Params struct {
	Hash    []byte
	M       int
	PubKeys [][]byte
}

// Template is a recognizer and builder for one standard output script shape.
type Template interface {
	// Class returns the class of the scripts built by the template.
	Class() Class

	// Build returns the script committing to p. It fails with
	// ErrInvalidTemplateParameters if p violates the template contract.
	Build(p Params) (Script, error)

	// Match returns the parameters of s and true if s has the shape of the
	// template. A script with a different shape is not an error, Match
	// returns false.
	Match(s Script) (Params, bool)
}

type hashTemplate struct {
	class Class
	build func([]byte) (Script, error)
	match func(Script) ([]byte, bool)
}

func (t hashTemplate) Class() Class {
	return t.class
}

func (t hashTemplate) Build(p Params) (Script, error) {
	return t.build(p.Hash)
}

func (t hashTemplate) Match(s Script) (Params, bool) {
	hash, ok := t.match(s)
	if !ok {
		return Params{}, false
	}
	return Params{Hash: hash}, true
}

type multisigTemplate struct{}

func (multisigTemplate) Class() Class {
	return MultiSigTy
}

func (multisigTemplate) Build(p Params) (Script, error) {
	return BuildMultisig(p.M, p.PubKeys)
}

func (multisigTemplate) Match(s Script) (Params, bool) {
	m, pubKeys, ok := MatchMultisig(s)
	if !ok {
		return Params{}, false
	}
	return Params{M: m, PubKeys: pubKeys}, true
}

var (
	// P2PKH is the pay-to-pubkey-hash template.
	P2PKH Template = hashTemplate{PubKeyHashTy, BuildP2PKH, MatchP2PKH}

	// P2SH is the pay-to-script-hash template.
	P2SH Template = hashTemplate{ScriptHashTy, BuildP2SH, MatchP2SH}

	// P2WPKH is the pay-to-witness-pubkey-hash template.
	P2WPKH Template = hashTemplate{
		WitnessV0PubKeyHashTy, BuildP2WPKH, MatchP2WPKH,
	}

	// P2WSH is the pay-to-witness-script-hash template.
	P2WSH Template = hashTemplate{
		WitnessV0ScriptHashTy, BuildP2WSH, MatchP2WSH,
	}

	// Multisig is the bare m-of-n multisig template.
	Multisig Template = multisigTemplate{}
)

// Templates returns the standard templates in matching priority order:
// P2PKH, P2SH, P2WPKH, P2WSH, Multisig.
func Templates() []Template {
	return []Template{P2PKH, P2SH, P2WPKH, P2WSH, Multisig}
}

// Match tries every template in priority order and returns the first one
// matching s along with its parameters.
func Match(s Script) (Template, Params, bool) {
	for _, t := range Templates() {
		if p, ok := t.Match(s); ok {
			return t, p, true
		}
	}
	return nil, Params{}, false
}

// Classify returns the class of s, NonStandardTy if no template matches.
func Classify(s Script) Class {
	t, _, ok := Match(s)
	if !ok {
		log.Tracef("Script %v matches no standard template", s)
		return NonStandardTy
	}
	return t.Class()
}

// Details describes a serialized output script.
type Details struct {
	Class              Class
	Script             Script
	Data               [][]byte
	RequiredSignatures int
	NumOfPublicKeys    int
}

// ExtractDetails parses pkScript and returns its class along with the
// hashes or public keys it commits to and the number of required
// signatures. A script that parses but matches no template is returned as
// NonStandardTy with no data.
func ExtractDetails(pkScript []byte) (*Details, error) {
	s, err := Parse(pkScript)
	if err != nil {
		return nil, err
	}

	details := &Details{
		Class:  NonStandardTy,
		Script: s,
		Data:   make([][]byte, 0),
	}

	t, p, ok := Match(s)
	if !ok {
		return details, nil
	}
	details.Class = t.Class()

	switch details.Class {
	case MultiSigTy:
		details.Data = append(details.Data, p.PubKeys...)
		details.RequiredSignatures = p.M
		details.NumOfPublicKeys = len(p.PubKeys)

	default:
		details.Data = append(details.Data, p.Hash)
		details.RequiredSignatures = 1
	}

	return details, nil
}

// isCanonicalPush returns whether c pushes exactly size bytes with the
// canonical push opcode.
func isCanonicalPush(c Chunk, size int) bool {
	return c.IsData() && c.IsMinimal() && len(c.Data) == size
}

// isOp returns whether c is the bare opcode op.
func isOp(c Chunk, op byte) bool {
	return !c.IsData() && c.Opcode == op
}

// copyBytes returns a copy of b, so matched parameters never alias the
// script they were extracted from.
func copyBytes(b []byte) []byte {
	return append([]byte(nil), b...)
}

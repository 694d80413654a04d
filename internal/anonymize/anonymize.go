// Package anonymize mints stable pseudonyms for hidden identities and runs
// the hide pass that rewrites the displayable response set.
//
// A pseudonym is a pure function of (participant type, real name): the same
// hidden giver collapses to one pseudonym across all of their responses,
// while different hidden givers of the same type get different ones. The
// digit suffix is a hash of an obfuscation of the real name; two real names
// colliding on that hash would share a pseudonym. That weakness is inherited
// behavior and intentionally left as is.
package anonymize

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/ahrav/go-feedback/internal/domain"
)

// Marker is the reserved two-character sequence present in every pseudonym
// identifier and in no real identifier. Downstream logic uses it to refuse
// roster lookups on pseudonyms.
const Marker = "@@"

// nameKey drives the deterministic obfuscation of real names. It shields the
// displayed digits from trivially inverting back to short names; it is not a
// secrecy boundary.
var nameKey = []byte("go-feedback/anonymize/v1-key\x00\x00\x00\x00")

// Name returns the pseudonym display name for a hidden participant,
// e.g. "Anonymous Student 1234567890".
func Name(t domain.ParticipantType, realName string) string {
	return fmt.Sprintf("Anonymous %s %s", t.SingularForm(), hashName(realName))
}

// NameWithoutID returns the pseudonym display name with the digit suffix
// stripped, e.g. "Anonymous Student". Renderers use it for column headers
// that cover all anonymous participants of a type.
func NameWithoutID(t domain.ParticipantType) string {
	return "Anonymous " + t.SingularForm()
}

// Identifier returns the pseudonym identifier for a hidden participant. It
// embeds Marker so it is syntactically distinguishable from a real email or
// team name.
func Identifier(t domain.ParticipantType, realName string) string {
	name := Name(t, realName)
	return name + Marker + name + ".anon"
}

// IsPseudonym reports whether the identifier was minted by Identifier.
func IsPseudonym(id string) bool {
	return strings.Contains(id, Marker)
}

// hashName renders the unsigned decimal hash of the obfuscated real name,
// so the pseudonym suffix is always a plain digit run.
func hashName(realName string) string {
	h := fnv.New64a()
	h.Write(obfuscate(realName))
	return strconv.FormatUint(h.Sum64(), 10)
}

// obfuscate applies a fixed-key AES-CTR keystream to the name bytes. The
// transform is deterministic so pseudonyms stay stable across bundles built
// from the same inputs.
func obfuscate(name string) []byte {
	block, err := aes.NewCipher(nameKey)
	if err != nil {
		// The key is a compile-time constant of valid length.
		panic(err)
	}
	iv := make([]byte, aes.BlockSize)
	out := make([]byte, len(name))
	cipher.NewCTR(block, iv).XORKeyStream(out, []byte(name))
	return out
}

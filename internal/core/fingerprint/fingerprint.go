// Package fingerprint derives deterministic cache keys for match requests
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// New hashes (requisition id, sorted skill ids, canonical options bytes) into a
// stable hex key. Skill ids are sorted on a copy so the caller's slice order
// never leaks into the key
func New(requisitionID string, skillIDs []string, options []byte) string {
	ids := append([]string(nil), skillIDs...)
	sort.Strings(ids)

	h := sha256.New()
	h.Write([]byte(requisitionID))
	h.Write([]byte{'|'})
	h.Write([]byte(strings.Join(ids, ",")))
	h.Write([]byte{'|'})
	h.Write(options)
	return hex.EncodeToString(h.Sum(nil))
}

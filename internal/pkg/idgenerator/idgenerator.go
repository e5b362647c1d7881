// nolint: gochecknoglobals
package idgenerator

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	StagingTableTokenLength = 10
)

// alphabet used in ID generation, it must stay a valid part of an unquoted SQL identifier.
var alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// StagingTableToken returns a unique token for the staging table name,
// so concurrent merges of the same source cannot collide.
func StagingTableToken() string {
	return gonanoid.MustGenerate(alphabet, StagingTableTokenLength)
}

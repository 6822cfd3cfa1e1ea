package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
)

// EncodeIDToken creates a base64 encoded cursor from the last-seen
// transaction id. Listing is ordered by descending id, so the next page
// holds ids strictly below the cursor.
func EncodeIDToken(id int64) string {
	return base64.StdEncoding.EncodeToString([]byte(strconv.FormatInt(id, 10)))
}

// DecodeIDToken parses the base64 encoded cursor back into an id.
func DecodeIDToken(token string) (int64, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	id, err := strconv.ParseInt(string(decodedBytes), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (id parse): %w", err)
	}

	return id, nil
}

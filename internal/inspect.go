package internal

import (
	"crew-dispatch/domain"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mama165/sdk-go/database"
)

// DispatchMapper renders the dispatch keyspace in the badger inspector.
func DispatchMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	prefix, _, _ := strings.Cut(key, ":")

	switch prefix {
	case "msg":
		var m domain.Message
		if err := json.Unmarshal(val, &m); err != nil {
			row.Detail = "Error: unmarshal failed"
			return row
		}
		row.Type = "MESSAGE"
		row.Detail = fmt.Sprintf("[%s] %s: %s (read by %d)", m.Channel, m.Sender, m.Content, len(m.ReadBy))
	case "activity":
		var a domain.Activity
		if err := json.Unmarshal(val, &a); err != nil {
			row.Detail = "Error: unmarshal failed"
			return row
		}
		row.Type = "ACTIVITY"
		row.Detail = fmt.Sprintf("%s for %s read=%t group=%s", a.Type, a.User, a.Read, a.GroupKey)
	case "user":
		var u domain.User
		if err := json.Unmarshal(val, &u); err != nil {
			row.Detail = "Error: unmarshal failed"
			return row
		}
		row.Type = "USER"
		row.Detail = fmt.Sprintf("%s (%s) approved=%t", u.Name, u.Role, u.IsApproved)
	case "event", "opportunity", "chat":
		row.Type = strings.ToUpper(prefix)
		row.Detail = string(val)
	case "feed", "idx":
		row.Type = "INDEX"
		row.Detail = string(val)
	}
	return row
}

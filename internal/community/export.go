package community

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

var exportHeader = []string{"Name", "Email", "Comments", "Status", "Joined Date", "Last Active"}

// ExportEmails writes users as CSV with times rendered in loc.
func ExportEmails(w io.Writer, users []CollectedUser, loc *time.Location) error {
	if loc == nil {
		loc = time.UTC
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, u := range users {
		status := "Active"
		if u.Blocked {
			status = "Blocked"
		}
		row := []string{
			u.Name,
			u.Email,
			strconv.Itoa(u.CommentCount),
			status,
			time.UnixMilli(u.FirstSeen).In(loc).Format("2006-01-02 15:04"),
			time.UnixMilli(u.LastActive).In(loc).Format("2006-01-02 15:04"),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

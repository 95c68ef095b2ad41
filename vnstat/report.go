// Copyright © 2023 The Gomon Project.

package vnstat

type (
	// Report is the decoded output of a vnstat JSON query.
	Report struct {
		Version     string      `json:"vnstatversion"`
		JSONVersion string      `json:"jsonversion"`
		Interfaces  []Interface `json:"interfaces"`
	}

	// Interface holds the traffic accounting for one network interface.
	Interface struct {
		Name    string  `json:"name"`
		Alias   string  `json:"alias"`
		Created Stamp   `json:"created"`
		Updated Stamp   `json:"updated"`
		Traffic Traffic `json:"traffic"`
	}

	// Traffic groups the accounting windows that vnstat maintains. The five
	// periodic windows are ordered oldest first; only the last entry reflects
	// the current period.
	Traffic struct {
		Total      Entry   `json:"total"`
		FiveMinute []Entry `json:"fiveminute"`
		Hour       []Entry `json:"hour"`
		Day        []Entry `json:"day"`
		Month      []Entry `json:"month"`
		Year       []Entry `json:"year"`
	}

	// Entry reports the byte counts of one accounting period.
	Entry struct {
		ID   int64  `json:"id,omitempty"`
		Date Date   `json:"date,omitzero"`
		Time Time   `json:"time,omitzero"`
		Rx   uint64 `json:"rx"`
		Tx   uint64 `json:"tx"`
	}

	// Stamp reports when vnstat created or updated an interface's accounting.
	Stamp struct {
		Date      Date  `json:"date,omitzero"`
		Time      Time  `json:"time,omitzero"`
		Timestamp int64 `json:"timestamp,omitempty"`
	}

	// Date identifies an accounting period's day.
	Date struct {
		Year  int `json:"year"`
		Month int `json:"month,omitempty"`
		Day   int `json:"day,omitempty"`
	}

	// Time identifies an accounting period's time of day.
	Time struct {
		Hour   int `json:"hour"`
		Minute int `json:"minute"`
	}
)

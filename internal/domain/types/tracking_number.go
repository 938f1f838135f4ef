package types

// TrackingNumber is the result of testing one candidate string against one
// definition. It is created fresh per test and carries copies of the
// definition's Courier and Product only.
type TrackingNumber struct {
	Number           string            `json:"number"`
	Courier          Courier           `json:"courier"`
	Product          Product           `json:"product"`
	SerialNumber     SerialNumber      `json:"serial_number,omitempty"`
	TrackingURL      string            `json:"tracking_url,omitempty"`
	MatchData        map[string]string `json:"match_data"`
	Additional       map[string]Info   `json:"additional,omitempty"`
	ValidationErrors []ValidationError `json:"validation_errors"`
}

// Valid reports whether no validation rule failed.
func (t *TrackingNumber) Valid() bool { return len(t.ValidationErrors) == 0 }

// CourierInfo merges the definition's Courier fields with anything the
// "Courier" extractor matched. The extractor's "courier" and "courier_url"
// keys override the name and supply the URL; other keys are copied through.
func (t *TrackingNumber) CourierInfo() Info {
	info := Info{
		"code": t.Courier.Code,
		"name": t.Courier.Name,
	}
	for k, v := range t.Additional["Courier"] {
		if v == nil {
			continue
		}
		switch k {
		case "courier":
			info["name"] = v
		case "courier_url":
			info["url"] = v
		default:
			info[k] = v
		}
	}
	return info
}

// ServiceType merges the raw ServiceType capture with anything the
// "Service Type" extractor matched.
func (t *TrackingNumber) ServiceType() Info {
	info := Info{}
	if code, ok := t.MatchData["ServiceType"]; ok {
		info["code"] = code
	} else {
		info["code"] = nil
	}
	for k, v := range t.Additional["Service Type"] {
		info[k] = v
	}
	return info
}

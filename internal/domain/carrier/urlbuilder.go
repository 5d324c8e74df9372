package carrier

import (
	"fmt"
	"net/url"
	"strings"
)

// urlFormatters holds per-carrier deep-link builders keyed by carrier code.
// Carriers whose sites accept the identifier as a path segment or query
// parameter get one; everyone else falls back to the plain tracking page.
var urlFormatters = map[string]func(id string) string{
	"MAEU": func(id string) string {
		return "https://www.maersk.com/tracking/" + url.PathEscape(id)
	},
	"MSCU": func(id string) string {
		return "https://www.msc.com/en/track-a-shipment?trackingNumber=" + url.QueryEscape(id)
	},
	"CMDU": func(id string) string {
		return "https://www.cma-cgm.com/ebusiness/tracking/search?SearchBy=BL&Reference=" + url.QueryEscape(id)
	},
	"COSU": func(id string) string {
		return "https://elines.coscoshipping.com/ebusiness/cargoTracking?number=" + url.QueryEscape(id)
	},
	"HLCU": func(id string) string {
		return "https://www.hapag-lloyd.com/en/online-business/track/track-by-container-solution.html?container=" + url.QueryEscape(id)
	},
	"ONEY": func(id string) string {
		// ONE's portal wants the number without the ONEY document prefix.
		return "https://ecomm.one-line.com/one-ecom/manage-shipment/cargo-tracking?trakNoParam=" + url.QueryEscape(strings.TrimPrefix(id, "ONEY"))
	},
	"HDMU": func(id string) string {
		return "https://www.hmm21.com/e-service/general/trackNTrace/TrackNTrace.do?number=" + url.QueryEscape(id)
	},
	"EGLV": func(id string) string {
		return "https://ct.shipmentlink.com/servlet/TDB1_CargoTracking.do?BL=" + url.QueryEscape(id)
	},
	"KE": func(id string) string {
		return "https://cargo.koreanair.com/s/tracking?awb=" + url.QueryEscape(hyphenateAWB(id))
	},
	"OZ": func(id string) string {
		return "https://www.asianacargo.com/tracking/viewTraceAirWaybill.do?awbNo=" + url.QueryEscape(hyphenateAWB(id))
	},
	"UPS": func(id string) string {
		return "https://www.ups.com/track?tracknum=" + url.QueryEscape(id)
	},
	"FEDEX": func(id string) string {
		return "https://www.fedex.com/fedextrack/?trknbr=" + url.QueryEscape(id)
	},
	"DHL": func(id string) string {
		return "https://www.dhl.com/kr-en/home/tracking.html?tracking-id=" + url.QueryEscape(id)
	},
	"EMS": func(id string) string {
		return "https://service.epost.go.kr/trace.RetrieveEmsRigiTraceList.comm?POST_CODE=" + url.QueryEscape(id)
	},
	"KRPOST": func(id string) string {
		return "https://service.epost.go.kr/trace.RetrieveDomRigiTraceList.comm?sid1=" + url.QueryEscape(id)
	},
	"USPS": func(id string) string {
		return "https://tools.usps.com/go/TrackConfirmAction?tLabels=" + url.QueryEscape(id)
	},
}

// hyphenateAWB re-inserts the conventional hyphen between the airline prefix
// and the serial. Airline portals display AWBs as 180-12345678.
func hyphenateAWB(id string) string {
	if prefix, serial, ok := splitAWB(id); ok {
		return fmt.Sprintf("%s-%s", prefix, serial)
	}
	return id
}

// BuildTrackingURL returns a tracking deep link for the carrier and cleaned
// identifier. When no formatter is registered the carrier's landing page is
// returned unmodified; the user pastes the number there by hand.
func BuildTrackingURL(c *Carrier, id string) string {
	if f, ok := urlFormatters[c.Code]; ok {
		return f(id)
	}
	return c.TrackingURL
}

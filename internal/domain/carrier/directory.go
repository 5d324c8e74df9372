package carrier

// Directory is an immutable, in-memory collection of carrier records with
// O(1) lookup by category and code. Codes are unique within a category's
// working set but not across categories.
type Directory struct {
	carriers []Carrier
	byKey    map[directoryKey]int
}

type directoryKey struct {
	category Category
	code     string
}

// NewDirectory builds a directory from the given records. Later records win
// on key collision, matching the hand-maintained source tables where an
// updated entry is appended rather than edited in place.
func NewDirectory(carriers []Carrier) *Directory {
	d := &Directory{
		carriers: carriers,
		byKey:    make(map[directoryKey]int, len(carriers)),
	}
	for i, c := range carriers {
		d.byKey[directoryKey{c.Category, c.Code}] = i
	}
	return d
}

// Find returns the carrier with the given code within a category.
func (d *Directory) Find(category Category, code string) (*Carrier, bool) {
	i, ok := d.byKey[directoryKey{category, code}]
	if !ok {
		return nil, false
	}
	return &d.carriers[i], true
}

// All returns every record in the directory. The returned slice is a copy;
// callers cannot mutate the reference data.
func (d *Directory) All() []Carrier {
	out := make([]Carrier, len(d.carriers))
	copy(out, d.carriers)
	return out
}

// Len returns the number of records.
func (d *Directory) Len() int {
	return len(d.carriers)
}

// DefaultDirectory returns the compiled-in carrier dataset.
func DefaultDirectory() *Directory {
	return NewDirectory(defaultCarriers)
}

var defaultCarriers = []Carrier{
	// Container shipping lines. Codes follow the bill-of-lading owner prefix.
	{Name: "Maersk (머스크)", Code: "MAEU", TrackingURL: "https://www.maersk.com/tracking/", Category: CategoryContainer, Region: "Denmark", IsMajor: true},
	{Name: "MSC (엠에스씨)", Code: "MSCU", TrackingURL: "https://www.msc.com/en/track-a-shipment", Category: CategoryContainer, Region: "Switzerland", IsMajor: true},
	{Name: "CMA CGM (씨엠에이 씨지엠)", Code: "CMDU", TrackingURL: "https://www.cma-cgm.com/ebusiness/tracking", Category: CategoryContainer, Region: "France", IsMajor: true},
	{Name: "COSCO Shipping (코스코)", Code: "COSU", TrackingURL: "https://elines.coscoshipping.com/ebusiness/cargoTracking", Category: CategoryContainer, Region: "China", IsMajor: true},
	{Name: "Hapag-Lloyd (하파그로이드)", Code: "HLCU", TrackingURL: "https://www.hapag-lloyd.com/en/online-business/track/track-by-container-solution.html", Category: CategoryContainer, Region: "Germany", IsMajor: true},
	{Name: "Ocean Network Express (오션 네트워크 익스프레스)", Code: "ONEY", TrackingURL: "https://ecomm.one-line.com/one-ecom/manage-shipment/cargo-tracking", Category: CategoryContainer, Region: "Japan/Singapore", IsMajor: true},
	{Name: "Evergreen (에버그린)", Code: "EGLV", TrackingURL: "https://ct.shipmentlink.com/servlet/TDB1_CargoTracking.do", Category: CategoryContainer, Region: "Taiwan", IsMajor: true},
	{Name: "HMM (에이치엠엠)", Code: "HDMU", TrackingURL: "https://www.hmm21.com/e-service/general/trackNTrace/TrackNTrace.do", Category: CategoryContainer, Region: "South Korea", IsMajor: true},
	{Name: "Yang Ming (양밍)", Code: "YMLU", TrackingURL: "https://www.yangming.com/e-service/Track_Trace/track_trace_cargo_tracking.aspx", Category: CategoryContainer, Region: "Taiwan"},
	{Name: "ZIM (짐라인)", Code: "ZIMU", TrackingURL: "https://www.zim.com/tools/track-a-shipment", Category: CategoryContainer, Region: "Israel"},
	{Name: "OOCL (오오씨엘)", Code: "OOLU", TrackingURL: "https://www.oocl.com/eng/ourservices/eservices/cargotracking/", Category: CategoryContainer, Region: "Hong Kong"},
	{Name: "Wan Hai Lines (완하이)", Code: "WHLC", TrackingURL: "https://www.wanhai.com/views/cargoTrack/CargoTrack.xhtml", Category: CategoryContainer, Region: "Taiwan"},
	{Name: "KMTC (고려해운)", Code: "KMTU", TrackingURL: "https://www.ekmtc.com/index.html#/cargo-tracking", Category: CategoryContainer, Region: "South Korea"},
	{Name: "SM Line (에스엠상선)", Code: "SMLM", TrackingURL: "https://esvc.smlines.com/smline/CUP_HOM_3301.do", Category: CategoryContainer, Region: "South Korea"},
	{Name: "Sinokor (장금상선)", Code: "SKLU", TrackingURL: "https://ebiz.sinokor.co.kr/Tracking", Category: CategoryContainer, Region: "South Korea"},
	{Name: "Namsung (남성해운)", Code: "NSSU", TrackingURL: "https://www.namsung.co.kr/cargo/tracking", Category: CategoryContainer, Region: "South Korea"},

	// Airlines, keyed by IATA two-letter code; AWB prefixes map onto these.
	{Name: "Korean Air Cargo (대한항공)", Code: "KE", TrackingURL: "https://cargo.koreanair.com/s/tracking", Category: CategoryAir, Region: "South Korea", IsMajor: true},
	{Name: "Asiana Cargo (아시아나항공)", Code: "OZ", TrackingURL: "https://www.asianacargo.com/tracking/viewTraceAirWaybill.do", Category: CategoryAir, Region: "South Korea", IsMajor: true},
	{Name: "Cathay Cargo (캐세이퍼시픽)", Code: "CX", TrackingURL: "https://www.cathaycargo.com/en-us/manage/track-and-trace.html", Category: CategoryAir, Region: "Hong Kong", IsMajor: true},
	{Name: "Lufthansa Cargo (루프트한자)", Code: "LH", TrackingURL: "https://lufthansa-cargo.com/etracking", Category: CategoryAir, Region: "Germany", IsMajor: true},
	{Name: "Emirates SkyCargo (에미레이트)", Code: "EK", TrackingURL: "https://www.skycargo.com/cargo-tracking/", Category: CategoryAir, Region: "UAE"},
	{Name: "Singapore Airlines Cargo (싱가포르항공)", Code: "SQ", TrackingURL: "https://www.siacargo.com/ccn/ShipmentTrack.aspx", Category: CategoryAir, Region: "Singapore"},
	{Name: "Japan Airlines Cargo (일본항공)", Code: "JL", TrackingURL: "https://www.jal.co.jp/en/jalcargo/inter/awb/", Category: CategoryAir, Region: "Japan"},
	{Name: "All Nippon Airways Cargo (전일본공수)", Code: "NH", TrackingURL: "https://www.anacargo.jp/en/int/", Category: CategoryAir, Region: "Japan"},
	{Name: "China Airlines Cargo (중화항공)", Code: "CI", TrackingURL: "https://cargo.china-airlines.com/ccnetv2/content/manage/ShipmentTracking.aspx", Category: CategoryAir, Region: "Taiwan"},
	{Name: "EVA Air Cargo (에바항공)", Code: "BR", TrackingURL: "https://www.brcargo.com/NEC_WEB/Default.aspx", Category: CategoryAir, Region: "Taiwan"},
	{Name: "Qatar Airways Cargo (카타르항공)", Code: "QR", TrackingURL: "https://www.qrcargo.com/s/track-your-shipment", Category: CategoryAir, Region: "Qatar"},
	{Name: "Turkish Cargo (터키항공)", Code: "TK", TrackingURL: "https://www.turkishcargo.com/en/online-services/shipment-tracking", Category: CategoryAir, Region: "Turkey"},
	{Name: "FedEx Express Freight (페덱스 항공)", Code: "FX", TrackingURL: "https://www.fedex.com/fedextrack/", Category: CategoryAir, Region: "United States"},
	{Name: "UPS Air Cargo (유피에스 항공)", Code: "5X", TrackingURL: "https://www.ups.com/track", Category: CategoryAir, Region: "United States"},

	// Couriers.
	{Name: "UPS (유피에스)", Code: "UPS", TrackingURL: "https://www.ups.com/track", Category: CategoryCourier, Region: "United States", IsMajor: true},
	{Name: "FedEx (페덱스)", Code: "FEDEX", TrackingURL: "https://www.fedex.com/fedextrack/", Category: CategoryCourier, Region: "United States", IsMajor: true},
	{Name: "DHL Express (디에이치엘)", Code: "DHL", TrackingURL: "https://www.dhl.com/kr-en/home/tracking.html", Category: CategoryCourier, Region: "Germany", IsMajor: true},
	{Name: "EMS International (국제특급우편)", Code: "EMS", TrackingURL: "https://service.epost.go.kr/iservice/ems/ems_eng.jsp", Category: CategoryCourier, Region: "South Korea", IsMajor: true},
	{Name: "TNT (티엔티)", Code: "TNT", TrackingURL: "https://www.tnt.com/express/en_kr/site/shipping-tools/tracking.html", Category: CategoryCourier, Region: "Netherlands"},
	{Name: "SF Express (순펑익스프레스)", Code: "SF", TrackingURL: "https://www.sf-international.com/us/en/dynamic_function/waybill", Category: CategoryCourier, Region: "China"},
	{Name: "CJ Logistics (씨제이대한통운)", Code: "CJ", TrackingURL: "https://www.cjlogistics.com/ko/tool/parcel/tracking", Category: CategoryCourier, Region: "South Korea"},
	{Name: "Hanjin Express (한진택배)", Code: "HANJIN", TrackingURL: "https://www.hanjin.com/kor/CMS/DeliveryMgr/WaybillResult.do", Category: CategoryCourier, Region: "South Korea"},
	{Name: "Lotte Global Logistics (롯데글로벌로지스)", Code: "LOTTE", TrackingURL: "https://www.lotteglogis.com/home/reservation/tracking/index", Category: CategoryCourier, Region: "South Korea"},

	// Postal services.
	{Name: "Korea Post (우체국)", Code: "KRPOST", TrackingURL: "https://service.epost.go.kr/trace.RetrieveDomRigiTraceList.comm", Category: CategoryPost, Region: "South Korea", IsMajor: true},
	{Name: "USPS (미국우정청)", Code: "USPS", TrackingURL: "https://tools.usps.com/go/TrackConfirmAction", Category: CategoryPost, Region: "United States", IsMajor: true},
	{Name: "Japan Post (일본우편)", Code: "JPPOST", TrackingURL: "https://trackings.post.japanpost.jp/services/srv/search/input", Category: CategoryPost, Region: "Japan"},
	{Name: "China Post (중국우정)", Code: "CNPOST", TrackingURL: "https://track.yw56.com.cn/en", Category: CategoryPost, Region: "China"},
	{Name: "Royal Mail (로열메일)", Code: "ROYAL", TrackingURL: "https://www.royalmail.com/track-your-item", Category: CategoryPost, Region: "United Kingdom"},
	{Name: "Deutsche Post (독일우정)", Code: "DEPOST", TrackingURL: "https://www.deutschepost.de/en/s/sendungsverfolgung.html", Category: CategoryPost, Region: "Germany"},

	// Rail operators. No identifier ruleset; directory/search only.
	{Name: "Korail Logis (코레일로지스)", Code: "KORAIL", TrackingURL: "https://www.korail.com/global/eng/main.do", Category: CategoryRail, Region: "South Korea", IsMajor: true},
	{Name: "DB Cargo (디비카고)", Code: "DBC", TrackingURL: "https://www.dbcargo.com/rail-de-en/service-navigation/customer-portal", Category: CategoryRail, Region: "Germany"},
	{Name: "Union Pacific (유니온퍼시픽)", Code: "UP", TrackingURL: "https://www.up.com/customers/track-shipment/index.htm", Category: CategoryRail, Region: "United States"},
	{Name: "BNSF Railway (비엔에스에프)", Code: "BNSF", TrackingURL: "https://www.bnsf.com/ship-with-bnsf/support-services/track-shipments.html", Category: CategoryRail, Region: "United States"},
	{Name: "China Railway Express (중국철도)", Code: "CRE", TrackingURL: "https://www.95306.cn/", Category: CategoryRail, Region: "China"},
}

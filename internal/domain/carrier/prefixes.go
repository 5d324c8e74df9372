package carrier

// containerPrefixes maps a bill-of-lading owner prefix (the leading letters
// of a container or B/L number) to a container carrier code in the directory.
// Several lines issue documents under more than one prefix, so aliases point
// at the same code.
var containerPrefixes = map[string]string{
	"MAEU": "MAEU",
	"MAEI": "MAEU",
	"MRKU": "MAEU",
	"SEAU": "MAEU",
	"MSCU": "MSCU",
	"MEDU": "MSCU",
	"CMDU": "CMDU",
	"CMAU": "CMDU",
	"APLU": "CMDU",
	"COSU": "COSU",
	"CBHU": "COSU",
	"OOLU": "OOLU",
	"OOCU": "OOLU",
	"HLCU": "HLCU",
	"HLXU": "HLCU",
	"ONEY": "ONEY",
	"ONEU": "ONEY",
	"EGLV": "EGLV",
	"EGHU": "EGLV",
	"EISU": "EGLV",
	"HDMU": "HDMU",
	"HMMU": "HDMU",
	"YMLU": "YMLU",
	"ZIMU": "ZIMU",
	"WHLC": "WHLC",
	"WHLU": "WHLC",
	"KMTU": "KMTU",
	"SMLM": "SMLM",
	"SKLU": "SKLU",
	"NSSU": "NSSU",

	// Three-letter SCAC-style prefixes seen on house B/Ls.
	"MSK": "MAEU",
	"MSC": "MSCU",
	"CMA": "CMDU",
	"ONE": "ONEY",
	"HMM": "HDMU",
	"ZIM": "ZIMU",
}

// awbPrefixes maps the three-digit IATA airline prefix of an air waybill
// number to an air carrier code in the directory.
var awbPrefixes = map[string]string{
	"180": "KE",
	"988": "OZ",
	"160": "CX",
	"020": "LH",
	"176": "EK",
	"618": "SQ",
	"131": "JL",
	"205": "NH",
	"297": "CI",
	"695": "BR",
	"157": "QR",
	"235": "TK",
	"023": "FX",
	"406": "5X",
}

// courierPattern ties a compiled courier/postal format to a carrier code.
// Order matters: patterns are tried first to last and the first match wins.
type courierPattern struct {
	code     string
	category Category
	re       string
}

// courierPatterns is the ordered ruleset for courier and postal numbers.
// The 10-digit DHL rule is last among couriers on purpose: it is the most
// permissive numeric pattern and also collides with some airline booking
// references, so anything more specific must get a chance first.
var courierPatterns = []courierPattern{
	{code: "UPS", category: CategoryCourier, re: `^1Z[A-Z0-9]{16}$`},
	{code: "FEDEX", category: CategoryCourier, re: `^(\d{15}|\d{20}|\d{22})$`},
	{code: "DHL", category: CategoryCourier, re: `^\d{10}$`},
	{code: "KRPOST", category: CategoryPost, re: `^[A-Z]{2}\d{9}KR$`},
	{code: "EMS", category: CategoryCourier, re: `^E[A-Z]\d{9}[A-Z]{2}$`},
	{code: "USPS", category: CategoryPost, re: `^(9[2345]\d{20,24}|[A-Z]{2}\d{9}US)$`},
	{code: "JPPOST", category: CategoryPost, re: `^[A-Z]{2}\d{9}JP$`},
	{code: "CNPOST", category: CategoryPost, re: `^[A-Z]{2}\d{9}CN$`},
	{code: "ROYAL", category: CategoryPost, re: `^[A-Z]{2}\d{9}GB$`},
	{code: "DEPOST", category: CategoryPost, re: `^[A-Z]{2}\d{9}DE$`},
}

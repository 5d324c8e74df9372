package carrier

import "regexp"

// DetectionStatus classifies the outcome of identifier analysis.
type DetectionStatus string

const (
	// StatusDetected means the identifier matched a ruleset and the carrier
	// is registered in the directory.
	StatusDetected DetectionStatus = "detected"
	// StatusUnregistered means the identifier shape is recognized and a
	// prefix was extracted, but no directory record owns that prefix.
	StatusUnregistered DetectionStatus = "unregistered"
	// StatusUndetected means the identifier is well-formed input but matched
	// no known ruleset.
	StatusUndetected DetectionStatus = "undetected"
	// StatusNativeScript means the input contains Hangul and cannot be a
	// tracking identifier.
	StatusNativeScript DetectionStatus = "native_script"
	// StatusInvalid means the input is empty or too short after cleaning.
	StatusInvalid DetectionStatus = "invalid"
)

// Detection is the result of analyzing one raw identifier.
type Detection struct {
	Input       string          `json:"input"`
	Cleaned     string          `json:"cleaned"`
	Status      DetectionStatus `json:"status"`
	Category    Category        `json:"category,omitempty"`
	Carrier     *Carrier        `json:"carrier,omitempty"`
	TrackingURL string          `json:"tracking_url,omitempty"`
	Prefix      string          `json:"prefix,omitempty"`
}

// minIdentifierLen is the shortest identifier any ruleset can match.
const minIdentifierLen = 6

// Detector analyzes identifiers against the compiled rulesets and resolves
// carriers from a directory.
type Detector struct {
	dir      *Directory
	couriers []compiledCourierPattern
}

type compiledCourierPattern struct {
	code     string
	category Category
	re       *regexp.Regexp
}

// NewDetector compiles the courier ruleset against the given directory.
func NewDetector(dir *Directory) *Detector {
	d := &Detector{dir: dir}
	d.couriers = make([]compiledCourierPattern, 0, len(courierPatterns))
	for _, p := range courierPatterns {
		d.couriers = append(d.couriers, compiledCourierPattern{
			code:     p.code,
			category: p.category,
			re:       regexp.MustCompile(p.re),
		})
	}
	return d
}

// Detect cleans the raw input and runs it through the rulesets in fixed
// order: air waybill, courier and postal formats, then container shapes.
// AWB goes first because its all-digit form would otherwise be swallowed
// by the broad numeric courier rules.
func (d *Detector) Detect(raw string) Detection {
	det := Detection{Input: raw}

	if ContainsHangul(raw) {
		det.Status = StatusNativeScript
		return det
	}

	cleaned := CleanIdentifier(raw)
	det.Cleaned = cleaned
	if len(cleaned) < minIdentifierLen {
		det.Status = StatusInvalid
		return det
	}

	if prefix, _, ok := splitAWB(cleaned); ok {
		det.Category = CategoryAir
		det.Prefix = prefix
		if code, found := awbPrefixes[prefix]; found {
			if c, exists := d.dir.Find(CategoryAir, code); exists {
				det.Status = StatusDetected
				det.Carrier = c
				det.TrackingURL = BuildTrackingURL(c, cleaned)
				return det
			}
		}
		det.Status = StatusUnregistered
		return det
	}

	for _, p := range d.couriers {
		if !p.re.MatchString(cleaned) {
			continue
		}
		if c, exists := d.dir.Find(p.category, p.code); exists {
			det.Status = StatusDetected
			det.Category = p.category
			det.Carrier = c
			det.TrackingURL = BuildTrackingURL(c, cleaned)
			return det
		}
	}

	// UPU-shaped postal item whose country suffix matched no specific rule.
	if upuRe.MatchString(cleaned) {
		det.Status = StatusUnregistered
		det.Category = CategoryPost
		det.Prefix = cleaned[len(cleaned)-2:]
		return det
	}

	if isContainerShaped(cleaned) {
		det.Category = CategoryContainer
		det.Prefix = leadingLetters(cleaned, 4)
		if code, ok := containerPrefix(cleaned); ok {
			if c, exists := d.dir.Find(CategoryContainer, code); exists {
				det.Status = StatusDetected
				det.Carrier = c
				det.TrackingURL = BuildTrackingURL(c, cleaned)
				return det
			}
		}
		det.Status = StatusUnregistered
		return det
	}

	det.Status = StatusUndetected
	return det
}

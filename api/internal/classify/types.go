package classify

// Decision is the structured outcome of one classification request. Every
// field is always populated, by the model or by defaults.
type Decision struct {
	DominantClass   string  `json:"dominant_class"`
	Category        string  `json:"category"` // one of the five bin categories
	BinName         string  `json:"bin_name"`
	BinColor        string  `json:"bin_color"`
	Confidence      float64 `json:"confidence"` // clamped to [0,1]
	Reason          string  `json:"reason"`
	FunFact         string  `json:"fun_fact,omitempty"`
	RecyclingAdvice string  `json:"recycling_advice,omitempty"`
	YoutubeQuery    string  `json:"youtube_query,omitempty"`
}

// Detection pairs a label with a normalized bounding box [x1,y1,x2,y2].
// The model only classifies, it does not localize, so the box is always
// CenterBox.
type Detection struct {
	ClassName  string     `json:"class_name"`
	Confidence float64    `json:"confidence"`
	Box        [4]float64 `json:"box"`
}

// CenterBox is the fixed placeholder region used for every detection.
var CenterBox = [4]float64{0.25, 0.25, 0.75, 0.75}

// Response is the body of a successful classify call.
type Response struct {
	Detections []Detection `json:"detections"`
	Decision   Decision    `json:"decision"`
}

// Fallback values used when the model reply cannot be decoded.
const (
	DefaultCategory   = CategoryAbu
	DefaultReason     = "tidak jelas"
	DefaultConfidence = 0.7
)

// DefaultDecision returns the best-effort decision used when decoding fails.
func DefaultDecision() Decision {
	return Decision{
		DominantClass: "tidak dikenali",
		Category:      DefaultCategory,
		Confidence:    DefaultConfidence,
		Reason:        DefaultReason,
	}
}

// BuildResponse resolves the decision onto the bin taxonomy and attaches the
// synthetic detection entry.
func BuildResponse(d Decision) Response {
	d.Category, d.BinName = ResolveBin(d.Category)
	d.BinColor = d.Category
	if d.DominantClass == "" {
		d.DominantClass = d.BinName
	}
	return Response{
		Detections: []Detection{{
			ClassName:  d.BinName,
			Confidence: d.Confidence,
			Box:        CenterBox,
		}},
		Decision: d,
	}
}

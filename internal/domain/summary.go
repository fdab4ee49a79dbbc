package domain

import (
	"time"

	"github.com/google/uuid"
)

// StructuralSummary is the full set of derived scoring variables for one
// subject's protocol. It is a pure function of the subject's responses and
// age; every recomputation replaces all fields.
type StructuralSummary struct {
	SubjectID  uuid.UUID `json:"subject_id"`
	Age        int       `json:"age"`
	ComputedAt time.Time `json:"computed_at"`

	Location LocationFeatures `json:"location"`
	DevQual  DevQualCounts    `json:"dev_qual"`
	FQx      FormQualCounts   `json:"fqx"`
	MQual    FormQualCounts   `json:"mqual"`
	WD       FormQualCounts   `json:"wd"`

	// Blends holds every blend response as its period-joined tokens followed by
	// a comma, e.g. "Ma.fc,fma.y,".
	Blends       string             `json:"blends"`
	BlendCount   int                `json:"blend_count"`
	ColShdBlends int                `json:"col_shd_blends"`
	ShdBlends    int                `json:"shd_blends"`
	Single       SingleDeterminants `json:"single"`

	Contents ContentCounts `json:"contents"`
	// Approach lists, per card I..X, the locations of that card's responses
	// joined with ".".
	Approach [10]string    `json:"approach"`
	Special  SpecialScores `json:"special"`

	Core          Core           `json:"core"`
	Affect        Affect         `json:"affect"`
	Interpersonal Interpersonal  `json:"interpersonal"`
	Ideation      Ideation       `json:"ideation"`
	Mediation     Mediation      `json:"mediation"`
	Processing    Processing     `json:"processing"`
	Self          SelfPerception `json:"self"`
	Indices       SpecialIndices `json:"indices"`
}

type LocationFeatures struct {
	Zf   int     `json:"Zf"`
	Zsum float64 `json:"Zsum"`
	// Zest is 0 when Zf is 0 and is shown as NA.
	Zest float64 `json:"Zest"`
	W    int     `json:"W"`
	D    int     `json:"D"`
	Dd   int     `json:"Dd"`
	S    int     `json:"S"`
}

type DevQualCounts struct {
	Plus      int `json:"plus"`
	Ordinary  int `json:"o"`
	VaguePlus int `json:"v_plus"`
	Vague     int `json:"v"`
}

// FormQualCounts tallies form quality symbols. None counts both "no" and "none".
type FormQualCounts struct {
	Plus     int `json:"plus"`
	Ordinary int `json:"o"`
	Unusual  int `json:"u"`
	Minus    int `json:"minus"`
	None     int `json:"none"`
}

// SingleDeterminants counts determinants of non-blend responses plus pair markers.
type SingleDeterminants struct {
	M      int `json:"M"`
	FM     int `json:"FM"`
	LowerM int `json:"m"`
	FC     int `json:"FC"`
	CF     int `json:"CF"`
	C      int `json:"C"`
	Cn     int `json:"Cn"`
	FCa    int `json:"FC'"`
	CaF    int `json:"C'F"`
	Ca     int `json:"C'"`
	FT     int `json:"FT"`
	TF     int `json:"TF"`
	T      int `json:"T"`
	FV     int `json:"FV"`
	VF     int `json:"VF"`
	V      int `json:"V"`
	FY     int `json:"FY"`
	YF     int `json:"YF"`
	Y      int `json:"Y"`
	Fr     int `json:"Fr"`
	RF     int `json:"rF"`
	FD     int `json:"FD"`
	F      int `json:"F"`
	Pair   int `json:"pair"`
}

type ContentCounts struct {
	H       int `json:"H"`
	HParen  int `json:"(H)"`
	Hd      int `json:"Hd"`
	HdParen int `json:"(Hd)"`
	Hx      int `json:"Hx"`
	A       int `json:"A"`
	AParen  int `json:"(A)"`
	Ad      int `json:"Ad"`
	AdParen int `json:"(Ad)"`
	An      int `json:"An"`
	Art     int `json:"Art"`
	Ay      int `json:"Ay"`
	Bl      int `json:"Bl"`
	Bt      int `json:"Bt"`
	Cg      int `json:"Cg"`
	Cl      int `json:"Cl"`
	Ex      int `json:"Ex"`
	Fd      int `json:"Fd"`
	Fi      int `json:"Fi"`
	Ge      int `json:"Ge"`
	Hh      int `json:"Hh"`
	Ls      int `json:"Ls"`
	Na      int `json:"Na"`
	Sc      int `json:"Sc"`
	Sx      int `json:"Sx"`
	Xy      int `json:"Xy"`
	Id      int `json:"Id"`
}

type SpecialScores struct {
	DV    int `json:"DV"`
	DV2   int `json:"DV2"`
	DR    int `json:"DR"`
	DR2   int `json:"DR2"`
	INC   int `json:"INC"`
	INC2  int `json:"INC2"`
	FAB   int `json:"FAB"`
	FAB2  int `json:"FAB2"`
	ALOG  int `json:"ALOG"`
	CON   int `json:"CON"`
	Sum6  int `json:"sum6"`
	WSum6 int `json:"wsum6"`
	PSV   int `json:"PSV"`
	AB    int `json:"AB"`
	AG    int `json:"AG"`
	COP   int `json:"COP"`
	MOR   int `json:"MOR"`
	PER   int `json:"PER"`
	CP    int `json:"CP"`
	GHR   int `json:"GHR"`
	PHR   int `json:"PHR"`
}

// Core holds the stress and control variables. Ratio pairs are rendered
// as "X:Y" strings.
type Core struct {
	R      int     `json:"R"`
	Lambda float64 `json:"L"`
	EB     string  `json:"EB"`
	EA     float64 `json:"EA"`
	// EBPer is 0 when the EB style is not pervasive and is shown as NA.
	EBPer  float64 `json:"EBper"`
	Eb     string  `json:"eb"`
	Es     int     `json:"es"`
	AdjEs  int     `json:"adj_es"`
	DScore int     `json:"D"`
	AdjD   int     `json:"adj_D"`

	SumM       int     `json:"sum_M"`
	WSumC      float64 `json:"WSumC"`
	SumFM      int     `json:"sum_FM"`
	SumLowerM  int     `json:"sum_m"`
	SumCa      int     `json:"sum_C'"`
	SumV       int     `json:"sum_V"`
	SumT       int     `json:"sum_T"`
	SumY       int     `json:"sum_Y"`
	SumShading int     `json:"sum_shading"`
	SumFMm     int     `json:"sum_FM_m"`
}

type Affect struct {
	FCProp  string `json:"FC:CF+C"`
	PureC   int    `json:"pure_C"`
	CaCProp string `json:"SumC':WSumC"`
	// Afr is 1 when no response was given to cards I..VII.
	Afr     float64 `json:"Afr"`
	BlendsR string  `json:"Blends:R"`
}

type Interpersonal struct {
	GHRPHR    string  `json:"GHR:PHR"`
	AP        string  `json:"a:p"`
	SumA      int     `json:"sum_a"`
	SumP      int     `json:"sum_p"`
	HumanCont int     `json:"human_content"`
	Isol      float64 `json:"Isol"`
}

type Ideation struct {
	MaMp  string `json:"Ma:Mp"`
	SumMa int    `json:"sum_Ma"`
	SumMp int    `json:"sum_Mp"`
	Lvl2  int    `json:"Lvl_2"`
	Intel int    `json:"intel"`
}

type Mediation struct {
	XMinusPer float64 `json:"X-%"`
	XAPer     float64 `json:"XA%"`
	WDAPer    float64 `json:"WDA%"`
	SMinus    int     `json:"S-"`
	Popular   int     `json:"P"`
	XPlusPer  float64 `json:"X+%"`
	XuPer     float64 `json:"Xu%"`
}

type Processing struct {
	// Zd is 0 when Zest is 0 and is shown as NA.
	Zd   float64 `json:"Zd"`
	WDDd string  `json:"W:D:Dd"`
	WM   string  `json:"W:M"`
}

type SelfPerception struct {
	Ego   float64 `json:"ego"`
	FrRF  int     `json:"Fr+rF"`
	FD    int     `json:"FD"`
	AnXy  int     `json:"An+Xy"`
	HProp string  `json:"H:(H)+Hd+(Hd)"`
}

// SpecialIndices holds the criterion vectors of the six special indices.
type SpecialIndices struct {
	PTI    Criteria `json:"PTI"`
	SumPTI int      `json:"sum_PTI"`

	DEPI         Criteria `json:"DEPI"`
	SumDEPI      int      `json:"sum_DEPI"`
	DEPIPositive bool     `json:"DEPI_positive"`

	CDI         Criteria `json:"CDI"`
	SumCDI      int      `json:"sum_CDI"`
	CDIPositive bool     `json:"CDI_positive"`

	SCON         Criteria `json:"S-CON"`
	SumSCON      int      `json:"sum_S-CON"`
	SCONPositive bool     `json:"S-CON_positive"`

	HVIPremise  bool     `json:"HVI_premise"`
	HVI         Criteria `json:"HVI"`
	SumHVI      int      `json:"sum_HVI"`
	HVIExcept   string   `json:"HVI_except,omitempty"`
	HVIPositive bool     `json:"HVI_positive"`

	OBS         Criteria `json:"OBS"`
	OBSPositive bool     `json:"OBS_positive"`
}

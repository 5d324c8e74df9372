package quiz

// Profile describes one Incoterms 2020 rule as a personality outcome.
// BestMatch and WorstMatch reference other profile codes the way
// compatibility pairings do in personality tests.
type Profile struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	Title      string `json:"title"`
	Summary    string `json:"summary"`
	Detail     string `json:"detail"`
	BestMatch  string `json:"best_match"`
	WorstMatch string `json:"worst_match"`
}

// profileOrder lists the eleven rules from minimum to maximum seller
// obligation; the score index selects directly into this slice.
var profileOrder = []string{
	"EXW", "FCA", "FAS", "FOB", "CFR", "CIF", "CPT", "CIP", "DAP", "DPU", "DDP",
}

// Profiles returns all outcomes in obligation order.
func Profiles() []Profile {
	out := make([]Profile, 0, len(profileOrder))
	for _, code := range profileOrder {
		out = append(out, profilesByCode[code])
	}
	return out
}

// ProfileByCode looks up one outcome. The second return is false for
// unknown codes.
func ProfileByCode(code string) (Profile, bool) {
	p, ok := profilesByCode[code]
	return p, ok
}

var profilesByCode = map[string]Profile{
	"EXW": {
		Code:       "EXW",
		Name:       "Ex Works (공장인도)",
		Title:      "문 앞 독립주의자",
		Summary:    "내 공장 문 앞에서 거래는 끝난다. 그 뒤는 바이어의 모험.",
		Detail:     "의무를 최소로 줄이고 본업에 집중하는 타입입니다. 수출 절차와 운송은 전부 바이어 몫이라 간편하지만, 상대가 물류에 익숙하지 않으면 거래 자체가 틀어질 수 있습니다.",
		BestMatch:  "DDP",
		WorstMatch: "DAP",
	},
	"FCA": {
		Code:       "FCA",
		Name:       "Free Carrier (운송인인도)",
		Title:      "합리적 실용주의자",
		Summary:    "수출 신고까지는 내가, 운송은 바이어가. 가장 균형 잡힌 출발점.",
		Detail:     "컨테이너 시대의 표준에 가까운 선택입니다. 수출 통관은 책임지되 운송 계약은 상대에게 넘겨 리스크와 수고의 균형을 잡습니다.",
		BestMatch:  "CIP",
		WorstMatch: "DDP",
	},
	"FAS": {
		Code:       "FAS",
		Name:       "Free Alongside Ship (선측인도)",
		Title:      "부두 위의 전통주의자",
		Summary:    "배 옆까지만 가져다 놓는다. 싣는 건 바이어의 일.",
		Detail:     "벌크 화물 거래에서 빛나는 고전적인 조건입니다. 선측 인도라는 명확한 선을 긋지만, 컨테이너 화물에는 어울리지 않는 선택일 수 있습니다.",
		BestMatch:  "CFR",
		WorstMatch: "CIP",
	},
	"FOB": {
		Code:       "FOB",
		Name:       "Free On Board (본선인도)",
		Title:      "난간 위의 승부사",
		Summary:    "본선에 실리는 순간 내 손을 떠난다. 무역의 영원한 클래식.",
		Detail:     "가장 널리 쓰이는 해상 조건입니다. 선적까지 책임지고 그 뒤는 깔끔하게 넘기는, 모두가 아는 규칙이라 협상도 빠릅니다.",
		BestMatch:  "CIF",
		WorstMatch: "DPU",
	},
	"CFR": {
		Code:       "CFR",
		Name:       "Cost and Freight (운임포함인도)",
		Title:      "운임까지 챙기는 계산가",
		Summary:    "도착항까지 운임은 내가 낸다. 리스크는 배 위에서 이미 넘겼지만.",
		Detail:     "운임 협상력이 있는 수출자의 선택입니다. 비용과 위험의 분기점이 다르다는 걸 정확히 이해하고 있어야 진가가 나옵니다.",
		BestMatch:  "FAS",
		WorstMatch: "EXW",
	},
	"CIF": {
		Code:       "CIF",
		Name:       "Cost, Insurance and Freight (운임보험료포함인도)",
		Title:      "보험 든든 안심파",
		Summary:    "운임에 보험까지 얹어 보낸다. 바이어가 가장 좋아하는 세 글자.",
		Detail:     "FOB의 책임 구조에 운임과 최소 담보 보험을 더한 조건입니다. 신용장 거래에서 선호되는 만큼 서류 감각이 필요합니다.",
		BestMatch:  "FOB",
		WorstMatch: "EXW",
	},
	"CPT": {
		Code:       "CPT",
		Name:       "Carriage Paid To (운송비지급인도)",
		Title:      "복합운송 설계자",
		Summary:    "배든 비행기든 트럭이든, 지정 지점까지 운송비는 내가.",
		Detail:     "운송수단을 가리지 않는 현대적인 조건입니다. 첫 운송인에게 인도한 순간 위험이 넘어간다는 점을 아는 사람만 제대로 씁니다.",
		BestMatch:  "FCA",
		WorstMatch: "FAS",
	},
	"CIP": {
		Code:       "CIP",
		Name:       "Carriage and Insurance Paid To (운송비보험료지급인도)",
		Title:      "풀커버 보호자",
		Summary:    "운송비에 최대 담보 보험까지. 상대를 확실히 안심시키는 타입.",
		Detail:     "2020 개정에서 최대 담보(ICC A)가 기본이 된 조건입니다. 항공, 복합운송 거래에서 신뢰를 쌓고 싶은 수출자에게 어울립니다.",
		BestMatch:  "FCA",
		WorstMatch: "EXW",
	},
	"DAP": {
		Code:       "DAP",
		Name:       "Delivered at Place (도착지인도)",
		Title:      "끝까지 함께 동행자",
		Summary:    "지정 장소 도착까지 내가 간다. 내리는 것만 바이어 몫.",
		Detail:     "도착지 기준 조건 중 가장 무난한 선택입니다. 수입 통관 전까지 전 구간을 책임지므로 현지 사정에 밝아야 합니다.",
		BestMatch:  "EXW",
		WorstMatch: "FAS",
	},
	"DPU": {
		Code:       "DPU",
		Name:       "Delivered at Place Unloaded (도착지양하인도)",
		Title:      "하차까지 완벽주의자",
		Summary:    "도착해서 내려놓는 것까지 내 일. 유일하게 양하 의무가 있는 조건.",
		Detail:     "열한 가지 규칙 중 유일하게 양하까지 수출자 의무인 조건입니다. 터미널, 창고 사정까지 챙길 수 있는 물류 체력이 필요합니다.",
		BestMatch:  "EXW",
		WorstMatch: "FOB",
	},
	"DDP": {
		Code:       "DDP",
		Name:       "Delivered Duty Paid (관세지급인도)",
		Title:      "올인클루시브 해결사",
		Summary:    "관세까지 내가 낸다. 바이어는 문만 열면 되는 풀서비스.",
		Detail:     "수출자 의무가 최대인 조건입니다. 수입국 통관과 세금까지 떠안는 만큼, 현지 규제를 모르면 가장 위험한 조건이기도 합니다.",
		BestMatch:  "EXW",
		WorstMatch: "FCA",
	},
}

package quiz

// Questions returns the fixed ten-question bank in presentation order.
// Weights run buyer-side negative to seller-side positive; every question
// offers the full -3..+3 spread across its four options.
func Questions() []Question {
	return questionBank
}

var questionBank = []Question{
	{
		ID:        1,
		Text:      "해외 거래처가 운송사를 대신 골라주겠다고 합니다. 당신의 반응은?",
		Dimension: DimensionControl,
		Options: []Option{
			{Label: "내 화물은 내가 고른 운송사로만 보낸다", Weight: -3},
			{Label: "견적은 받아보되 최종 결정은 내가 한다", Weight: -1},
			{Label: "상대가 더 잘 알면 맡기는 편이다", Weight: 1},
			{Label: "전부 맡기고 나는 결과만 확인한다", Weight: 3},
		},
	},
	{
		ID:        2,
		Text:      "운송 중 화물이 파손되면 책임 소재는 어떻게 정리하고 싶나요?",
		Dimension: DimensionRisk,
		Options: []Option{
			{Label: "선적 전까지만 내 책임, 그 이후는 상대 몫", Weight: -3},
			{Label: "항구 인도 시점에서 깔끔하게 넘기고 싶다", Weight: -1},
			{Label: "도착항까지는 내가 챙겨야 마음이 놓인다", Weight: 1},
			{Label: "문 앞에 도착할 때까지 전 구간 내가 책임진다", Weight: 3},
		},
	},
	{
		ID:        3,
		Text:      "국제 운임이 갑자기 두 배로 뛰었습니다. 누가 부담해야 할까요?",
		Dimension: DimensionCost,
		Options: []Option{
			{Label: "운임은 처음부터 상대가 내는 조건으로 계약한다", Weight: -3},
			{Label: "주 구간 운임만 내가, 나머지는 상대가", Weight: -1},
			{Label: "도착지 비용 일부까지는 감수할 수 있다", Weight: 1},
			{Label: "관세까지 포함해 전액 내가 부담해도 된다", Weight: 3},
		},
	},
	{
		ID:        4,
		Text:      "수출 통관 서류 작업을 마주하면?",
		Dimension: DimensionLogistics,
		Options: []Option{
			{Label: "서류는 쳐다보기도 싫다, 상대가 처리하길", Weight: -3},
			{Label: "수출 신고 정도는 해줄 수 있다", Weight: -1},
			{Label: "운송 서류까지 직접 챙기는 편이다", Weight: 1},
			{Label: "수입국 통관까지 내 손으로 끝내야 직성이 풀린다", Weight: 3},
		},
	},
	{
		ID:        5,
		Text:      "적하보험은 어떻게 들고 싶나요?",
		Dimension: DimensionRisk,
		Options: []Option{
			{Label: "보험은 각자 알아서, 나는 관여하지 않는다", Weight: -3},
			{Label: "상대가 들되 조건은 같이 정한다", Weight: -1},
			{Label: "내가 들어주되 최소 담보만", Weight: 1},
			{Label: "내가 최대 담보로 들어 상대를 안심시킨다", Weight: 3},
		},
	},
	{
		ID:        6,
		Text:      "거래처가 \"물류는 저희가 다 할게요\"라고 하면?",
		Dimension: DimensionRelationship,
		Options: []Option{
			{Label: "고마운 제안, 공장 출고만 하면 끝이라 좋다", Weight: -3},
			{Label: "주 운송까지는 넘기고 나머지는 내가", Weight: -1},
			{Label: "말은 고맙지만 운송은 내가 잡는 게 편하다", Weight: 1},
			{Label: "서비스 차원에서 끝까지 내가 해주고 싶다", Weight: 3},
		},
	},
	{
		ID:        7,
		Text:      "견적서를 쓸 때 선호하는 가격 구조는?",
		Dimension: DimensionCost,
		Options: []Option{
			{Label: "공장도 가격만 깔끔하게", Weight: -3},
			{Label: "선적항 인도 가격까지 포함", Weight: -1},
			{Label: "도착항까지 운임 포함 가격", Weight: 1},
			{Label: "문 앞 도착 기준 올인클루시브", Weight: 3},
		},
	},
	{
		ID:        8,
		Text:      "운송 스케줄이 꼬였을 때 당신의 대응은?",
		Dimension: DimensionLogistics,
		Options: []Option{
			{Label: "내 구간이 아니면 상대가 풀어야 할 문제", Weight: -3},
			{Label: "정보는 공유하지만 해결은 책임 구간대로", Weight: -1},
			{Label: "포워더에 직접 전화해서 같이 푼다", Weight: 1},
			{Label: "도착할 때까지 전 구간 내가 추적하고 조율한다", Weight: 3},
		},
	},
	{
		ID:        9,
		Text:      "처음 거래하는 해외 바이어와 조건 협상을 한다면?",
		Dimension: DimensionRelationship,
		Options: []Option{
			{Label: "신뢰가 쌓이기 전엔 내 의무를 최소로", Weight: -3},
			{Label: "표준적인 조건에서 크게 벗어나지 않게", Weight: -1},
			{Label: "상대 편의를 어느 정도 봐주며 시작한다", Weight: 1},
			{Label: "첫 거래일수록 끝까지 책임지는 모습을 보인다", Weight: 3},
		},
	},
	{
		ID:        10,
		Text:      "당신에게 '거래의 주도권'이란?",
		Dimension: DimensionControl,
		Options: []Option{
			{Label: "내 공장 문 앞에서 끝나는 것", Weight: -3},
			{Label: "배에 실리는 순간까지 쥐고 있는 것", Weight: -1},
			{Label: "바다 건너까지 따라가는 것", Weight: 1},
			{Label: "상대의 문 앞까지 놓지 않는 것", Weight: 3},
		},
	},
}

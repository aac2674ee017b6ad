// Package survey defines the questionnaire model: question definitions,
// typed answers, and coercion of stored answer blobs.
//
// Question IDs are keys in the stored answers JSON blob and in the weight
// tables. Do NOT rename them.
package survey

// Category is one of the four fixed scoring buckets.
type Category string

const (
	CategorySurveySimilarity Category = "surveySimilarity"
	CategoryLifestyle        Category = "lifestyle"
	CategoryValueAlignment   Category = "valueAlignment"
	CategoryPersonality      Category = "personality"
)

// Categories lists every scoring bucket in the order score breakdowns report them.
var Categories = []Category{
	CategorySurveySimilarity,
	CategoryLifestyle,
	CategoryValueAlignment,
	CategoryPersonality,
}

// Kind is the closed set of question variants. Each variant carries its own
// configuration and the scorer selects one similarity function per variant.
type Kind interface {
	isKind()
}

// Slider is a numeric range question.
type Slider struct {
	Min  float64
	Max  float64
	Step float64
}

// Select is a single choice from an enumerated option set.
type Select struct {
	Options []string
}

// Multiselect is a multiple choice from an enumerated option set.
type Multiselect struct {
	Options   []string
	MaxSelect int // 0 means unlimited
}

func (Slider) isKind()      {}
func (Select) isKind()      {}
func (Multiselect) isKind() {}

// Question is a static, process-wide question definition.
type Question struct {
	ID       string
	Section  string // UI grouping, not used for scoring
	Category Category
	Required bool
	Kind     Kind
}

func tenPointSlider() Slider { return Slider{Min: 1, Max: 10, Step: 1} }

// Questions is the production questionnaire. Every entry maps to exactly one
// scoring category; weights.Validate checks the invariant at construction.
var Questions = []Question{
	// dating values
	{ID: "dv_importance_of_love", Section: "dating_values", Category: CategorySurveySimilarity, Required: true, Kind: tenPointSlider()},
	{ID: "dv_ideal_relationship_pace", Section: "dating_values", Category: CategorySurveySimilarity, Required: true,
		Kind: Select{Options: []string{"천천히 알아가기", "자연스러운 흐름", "빠르게 확인하기", "상대에 맞추기"}}},
	{ID: "dv_physical_affection", Section: "dating_values", Category: CategorySurveySimilarity, Required: true, Kind: tenPointSlider()},
	{ID: "dv_jealousy_level", Section: "dating_values", Category: CategorySurveySimilarity, Required: true, Kind: tenPointSlider()},
	{ID: "dv_conflict_resolution", Section: "dating_values", Category: CategorySurveySimilarity, Required: true,
		Kind: Select{Options: []string{"바로 대화", "시간을 두고 대화", "편지/메시지로 전달", "자연스럽게 풀리길 기다림"}}},
	{ID: "dv_deal_with_ex", Section: "dating_values", Category: CategorySurveySimilarity, Required: true,
		Kind: Select{Options: []string{"완전 연락 안 함", "인사 정도는 함", "친구로 지냄", "상관없음"}}},

	// lifestyle
	{ID: "ls_weekend_preference", Section: "lifestyle", Category: CategoryLifestyle, Required: true,
		Kind: Select{Options: []string{"집에서 쉬기", "야외 활동", "문화생활", "친구 만남", "자기개발"}}},
	{ID: "ls_sleep_schedule", Section: "lifestyle", Category: CategoryLifestyle, Required: true,
		Kind: Select{Options: []string{"10시 이전", "10시~12시", "12시~2시", "2시 이후"}}},
	{ID: "ls_exercise_frequency", Section: "lifestyle", Category: CategoryLifestyle, Required: true,
		Kind: Select{Options: []string{"거의 안 함", "주 1-2회", "주 3-4회", "거의 매일"}}},
	{ID: "ls_spending_habits", Section: "lifestyle", Category: CategoryLifestyle, Required: true, Kind: tenPointSlider()},
	{ID: "ls_cleanliness", Section: "lifestyle", Category: CategoryLifestyle, Required: true, Kind: tenPointSlider()},
	{ID: "ls_pet_preference", Section: "lifestyle", Category: CategoryLifestyle, Required: true,
		Kind: Select{Options: []string{"키우고 있음", "키우고 싶음", "상관없음", "선호하지 않음"}}},

	// communication (scores into the survey-similarity bucket)
	{ID: "cm_contact_frequency", Section: "communication", Category: CategorySurveySimilarity, Required: true,
		Kind: Select{Options: []string{"수시로 연락", "하루 몇 번", "하루 1번", "필요할 때만"}}},
	{ID: "cm_communication_style", Section: "communication", Category: CategorySurveySimilarity, Required: true,
		Kind: Select{Options: []string{"전화", "문자/카카오톡", "직접 만남", "영상통화"}}},
	{ID: "cm_emotional_expression", Section: "communication", Category: CategorySurveySimilarity, Required: true, Kind: tenPointSlider()},
	{ID: "cm_listening_vs_talking", Section: "communication", Category: CategorySurveySimilarity, Required: true, Kind: tenPointSlider()},

	// future plans
	{ID: "fp_marriage_intent", Section: "future_plans", Category: CategoryValueAlignment, Required: true,
		Kind: Select{Options: []string{"빠르게 하고 싶음", "천천히 생각 중", "아직 모르겠음", "결혼 생각 없음"}}},
	{ID: "fp_children_preference", Section: "future_plans", Category: CategoryValueAlignment, Required: true,
		Kind: Select{Options: []string{"꼭 갖고 싶음", "있으면 좋겠음", "아직 모르겠음", "갖고 싶지 않음"}}},
	{ID: "fp_career_priority", Section: "future_plans", Category: CategoryValueAlignment, Required: true, Kind: tenPointSlider()},
	{ID: "fp_living_preference", Section: "future_plans", Category: CategoryValueAlignment, Required: true,
		Kind: Select{Options: []string{"도시 중심", "도시 외곽", "교외/시골", "상관없음"}}},

	// deep personality
	{ID: "pd_introvert_extrovert", Section: "personality_deep", Category: CategoryPersonality, Required: true, Kind: tenPointSlider()},
	{ID: "pd_spontaneity", Section: "personality_deep", Category: CategoryPersonality, Required: true, Kind: tenPointSlider()},
	{ID: "pd_risk_tolerance", Section: "personality_deep", Category: CategoryPersonality, Required: true, Kind: tenPointSlider()},
	{ID: "pd_humor_style", Section: "personality_deep", Category: CategoryPersonality, Required: true,
		Kind: Multiselect{Options: []string{"말장난/언어유머", "상황극/리액션", "블랙코미디", "자기비하", "따뜻한 유머"}, MaxSelect: 3}},
	{ID: "pd_stress_coping", Section: "personality_deep", Category: CategoryPersonality, Required: true,
		Kind: Select{Options: []string{"혼자 시간 보내기", "사람 만나기", "운동/활동", "먹기/마시기", "잠자기"}}},
}

// QuestionByID returns the question definition for an id, if declared.
func QuestionByID(id string) (Question, bool) {
	for _, q := range Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

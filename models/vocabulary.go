package models

// Fixed vocabularies the generator picks from. The All* slices define the
// uniform selection pools; slice order is the canonical ordering for the
// ordered enums (difficulty, experience level).

type CourseCategory string

const (
	CategoryProgramming CourseCategory = "programming"
	CategoryDesign      CourseCategory = "design"
	CategoryBusiness    CourseCategory = "business"
	CategoryMarketing   CourseCategory = "marketing"
	CategoryMusic       CourseCategory = "music"
	CategoryPhotography CourseCategory = "photography"
	CategoryDataScience CourseCategory = "data_science"
	CategoryLanguages   CourseCategory = "languages"
)

var AllCategories = []CourseCategory{
	CategoryProgramming,
	CategoryDesign,
	CategoryBusiness,
	CategoryMarketing,
	CategoryMusic,
	CategoryPhotography,
	CategoryDataScience,
	CategoryLanguages,
}

func (c CourseCategory) Display() string {
	switch c {
	case CategoryProgramming:
		return "Programming"
	case CategoryDesign:
		return "Design"
	case CategoryBusiness:
		return "Business"
	case CategoryMarketing:
		return "Marketing"
	case CategoryMusic:
		return "Music"
	case CategoryPhotography:
		return "Photography"
	case CategoryDataScience:
		return "Data Science"
	case CategoryLanguages:
		return "Languages"
	default:
		return string(c)
	}
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyExpert       Difficulty = "expert"
)

var AllDifficulties = []Difficulty{
	DifficultyBeginner,
	DifficultyIntermediate,
	DifficultyAdvanced,
	DifficultyExpert,
}

type ExperienceLevel string

const (
	LevelBeginner     ExperienceLevel = "beginner"
	LevelElementary   ExperienceLevel = "elementary"
	LevelIntermediate ExperienceLevel = "intermediate"
	LevelAdvanced     ExperienceLevel = "advanced"
	LevelExpert       ExperienceLevel = "expert"
)

var AllExperienceLevels = []ExperienceLevel{
	LevelBeginner,
	LevelElementary,
	LevelIntermediate,
	LevelAdvanced,
	LevelExpert,
}

type LessonType string

const (
	LessonVideo      LessonType = "video"
	LessonArticle    LessonType = "article"
	LessonQuiz       LessonType = "quiz"
	LessonAssignment LessonType = "assignment"
	LessonLive       LessonType = "live"
	LessonDownload   LessonType = "download"
)

var AllLessonTypes = []LessonType{
	LessonVideo,
	LessonArticle,
	LessonQuiz,
	LessonAssignment,
	LessonLive,
	LessonDownload,
}

type EnrollmentStatus string

const (
	EnrollmentPending   EnrollmentStatus = "pending"
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentPaused    EnrollmentStatus = "paused"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentCancelled EnrollmentStatus = "cancelled"
	EnrollmentExpired   EnrollmentStatus = "expired"
)

var AllEnrollmentStatuses = []EnrollmentStatus{
	EnrollmentPending,
	EnrollmentActive,
	EnrollmentPaused,
	EnrollmentCompleted,
	EnrollmentCancelled,
	EnrollmentExpired,
}

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentCompleted  PaymentStatus = "completed"
	PaymentFailed     PaymentStatus = "failed"
	PaymentRefunded   PaymentStatus = "refunded"
	PaymentCancelled  PaymentStatus = "cancelled"
)

var AllPaymentStatuses = []PaymentStatus{
	PaymentPending,
	PaymentProcessing,
	PaymentCompleted,
	PaymentFailed,
	PaymentRefunded,
	PaymentCancelled,
}

type PaymentMethod string

const (
	MethodCreditCard   PaymentMethod = "credit_card"
	MethodDebitCard    PaymentMethod = "debit_card"
	MethodPaypal       PaymentMethod = "paypal"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodMobileMoney  PaymentMethod = "mobile_money"
)

var AllPaymentMethods = []PaymentMethod{
	MethodCreditCard,
	MethodDebitCard,
	MethodPaypal,
	MethodBankTransfer,
	MethodMobileMoney,
}

// FeeRate is the processing-fee rate charged by the provider. Informational
// only; payment amounts are never adjusted by it.
func (m PaymentMethod) FeeRate() float64 {
	switch m {
	case MethodCreditCard:
		return 0.029
	case MethodDebitCard:
		return 0.015
	case MethodPaypal:
		return 0.034
	case MethodBankTransfer:
		return 0.008
	case MethodMobileMoney:
		return 0.021
	default:
		return 0
	}
}

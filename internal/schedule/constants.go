package schedule

const (
	AppName           = "Life Architect"
	TargetStudyHours  = 500
	DefaultTextModel  = "gemini-2.5-flash-preview-04-17"
	DefaultPlaylist   = "https://open.spotify.com/playlist/5gR4gv2XglaEFg2D2zbd8A?si=s6R_uG4gTVWte2iOtmDMHg&pt=29335fd9b1d524567ff327a26c5805b1&pi=3tqG1rdkQwajP"
	DefaultEquipment  = "Standard gym equipment (barbells, dumbbells, machines, cables, pull-up bar)"
	StudyPointsPerH   = 5
	StudyBonusPerH    = 10
	MealPoints        = 5
	MeditationPoints  = 10
	QuickHitPoints    = 15
	WeightPoints      = 30
	CardioPoints      = 15
	StudyToggleReward = 20
	OtherToggleReward = 10
)

// ExamTopics are the curriculum areas offered to the question generator.
var ExamTopics = []string{
	"Ethics",
	"Quantitative Methods",
	"Economics",
	"Financial Statement Analysis",
	"Corporate Issuers",
	"Equity Investments",
	"Fixed Income",
	"Derivatives",
	"Alternative Investments",
	"Portfolio Management",
}

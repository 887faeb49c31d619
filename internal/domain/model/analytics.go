package model

// MoodDistribution buckets mood ratings across the population.
type MoodDistribution struct {
	VeryHappy int `json:"veryHappy"`
	Happy     int `json:"happy"`
	Neutral   int `json:"neutral"`
	Sad       int `json:"sad"`
	VerySad   int `json:"verySad"`
}

// WeeklyTrend is one day of aggregate mood data.
type WeeklyTrend struct {
	Day     string  `json:"day"`
	AvgMood float64 `json:"avgMood"`
	Entries int     `json:"entries"`
}

// MoodAnalytics is the aggregate mood view shown to counselors and admins.
type MoodAnalytics struct {
	AverageMood      float64          `json:"averageMood"`
	TotalEntries     int              `json:"totalEntries"`
	StressAlerts     int              `json:"stressAlerts"`
	ImprovementTrend string           `json:"improvementTrend"`
	MoodDistribution MoodDistribution `json:"moodDistribution"`
	WeeklyTrends     []WeeklyTrend    `json:"weeklyTrends"`
}

// MonthlyGrowth is one month of user growth data.
type MonthlyGrowth struct {
	Month string `json:"month"`
	Users int    `json:"users"`
}

// WellnessMetrics summarizes platform-wide wellness indicators.
type WellnessMetrics struct {
	AverageMoodScore  float64 `json:"averageMoodScore"`
	EngagementRate    int     `json:"engagementRate"`
	SatisfactionScore float64 `json:"satisfactionScore"`
}

// StressorCount is one category of reported stress with its frequency.
type StressorCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// PlatformAnalytics is the admin dashboard payload.
type PlatformAnalytics struct {
	TotalUsers      int             `json:"totalUsers"`
	ActiveUsers     int             `json:"activeUsers"`
	MoodEntries     int             `json:"moodEntries"`
	ChatSessions    int             `json:"chatSessions"`
	StressAlerts    int             `json:"stressAlerts"`
	UserGrowth      []MonthlyGrowth `json:"userGrowth"`
	WellnessMetrics WellnessMetrics `json:"wellnessMetrics"`
	TopStressors    []StressorCount `json:"topStressors"`
}

// AssignedStudent is one student on a counselor's caseload.
type AssignedStudent struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	LastMoodEntry string  `json:"lastMoodEntry"`
	AverageMood   float64 `json:"averageMood"`
	RiskLevel     string  `json:"riskLevel"`
	LastContact   string  `json:"lastContact"`
}

// StudentAlert flags a student pattern needing counselor attention.
type StudentAlert struct {
	ID          int64  `json:"id"`
	StudentName string `json:"studentName"`
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// CounselorWeeklyStats summarizes a counselor's week.
type CounselorWeeklyStats struct {
	TotalCheckIns            int     `json:"totalCheckIns"`
	AverageMood              float64 `json:"averageMood"`
	StudentsNeedingAttention int     `json:"studentsNeedingAttention"`
	CompletedSessions        int     `json:"completedSessions"`
}

// CounselorSnapshot is the counselor dashboard payload.
type CounselorSnapshot struct {
	AssignedStudents []AssignedStudent    `json:"assignedStudents"`
	RecentAlerts     []StudentAlert       `json:"recentAlerts"`
	WeeklyStats      CounselorWeeklyStats `json:"weeklyStats"`
}

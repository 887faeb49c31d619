package service

import "github.com/campuswell/cw-ui-api/internal/domain/model"

// Dashboard snapshot data. Values are stable so dashboards render the same
// picture across reloads.

func moodAnalyticsSnapshot() model.MoodAnalytics {
	return model.MoodAnalytics{
		AverageMood:      3.2,
		TotalEntries:     156,
		StressAlerts:     12,
		ImprovementTrend: "+15%",
		MoodDistribution: model.MoodDistribution{
			VeryHappy: 23,
			Happy:     45,
			Neutral:   67,
			Sad:       18,
			VerySad:   3,
		},
		WeeklyTrends: []model.WeeklyTrend{
			{Day: "Mon", AvgMood: 3.1, Entries: 23},
			{Day: "Tue", AvgMood: 3.3, Entries: 28},
			{Day: "Wed", AvgMood: 2.9, Entries: 19},
			{Day: "Thu", AvgMood: 3.4, Entries: 31},
			{Day: "Fri", AvgMood: 3.8, Entries: 35},
			{Day: "Sat", AvgMood: 4.1, Entries: 12},
			{Day: "Sun", AvgMood: 3.6, Entries: 8},
		},
	}
}

func platformSnapshot() model.PlatformAnalytics {
	return model.PlatformAnalytics{
		TotalUsers:   1247,
		ActiveUsers:  892,
		MoodEntries:  3456,
		ChatSessions: 567,
		StressAlerts: 23,
		UserGrowth: []model.MonthlyGrowth{
			{Month: "Jan", Users: 234},
			{Month: "Feb", Users: 345},
			{Month: "Mar", Users: 456},
			{Month: "Apr", Users: 678},
			{Month: "May", Users: 823},
			{Month: "Jun", Users: 1247},
		},
		WellnessMetrics: model.WellnessMetrics{
			AverageMoodScore:  3.4,
			EngagementRate:    76,
			SatisfactionScore: 4.2,
		},
		TopStressors: []model.StressorCount{
			{Category: "Academic Pressure", Count: 456},
			{Category: "Social Anxiety", Count: 234},
			{Category: "Financial Stress", Count: 189},
			{Category: "Family Issues", Count: 156},
			{Category: "Health Concerns", Count: 123},
		},
	}
}

func assignedStudentsSnapshot() []model.AssignedStudent {
	return []model.AssignedStudent{
		{
			ID:            1,
			Name:          "Sarah Martinez",
			Email:         "sarah.m@university.edu",
			LastMoodEntry: "2024-01-15",
			AverageMood:   2.8,
			RiskLevel:     "medium",
			LastContact:   "2024-01-14",
		},
		{
			ID:            2,
			Name:          "James Wilson",
			Email:         "j.wilson@university.edu",
			LastMoodEntry: "2024-01-15",
			AverageMood:   3.5,
			RiskLevel:     "low",
			LastContact:   "2024-01-12",
		},
		{
			ID:            3,
			Name:          "Emily Chen",
			Email:         "e.chen@university.edu",
			LastMoodEntry: "2024-01-14",
			AverageMood:   2.1,
			RiskLevel:     "high",
			LastContact:   "2024-01-15",
		},
	}
}

func recentAlertsSnapshot() []model.StudentAlert {
	return []model.StudentAlert{
		{
			ID:          1,
			StudentName: "Emily Chen",
			Type:        "Low Mood Pattern",
			Severity:    "high",
			Date:        "2024-01-15",
			Description: "Consecutive days of mood ratings below 3",
		},
		{
			ID:          2,
			StudentName: "Michael Roberts",
			Type:        "Missed Check-ins",
			Severity:    "medium",
			Date:        "2024-01-14",
			Description: "No mood entries for 5 days",
		},
	}
}

func counselorWeeklyStatsSnapshot() model.CounselorWeeklyStats {
	return model.CounselorWeeklyStats{
		TotalCheckIns:            89,
		AverageMood:              3.2,
		StudentsNeedingAttention: 5,
		CompletedSessions:        12,
	}
}

func surveyQuestionsSnapshot() []model.SurveyQuestion {
	return []model.SurveyQuestion{
		{
			ID:       1,
			Question: "How would you rate your overall mental wellness this week?",
			Type:     model.SurveyTypeScale,
			Scale: &model.SurveyScale{
				Min:    1,
				Max:    5,
				Labels: []string{"Very Poor", "Poor", "Fair", "Good", "Excellent"},
			},
		},
		{
			ID:       2,
			Question: "Which of the following have been sources of stress for you recently?",
			Type:     model.SurveyTypeMultiSelect,
			Options: []string{
				"Academic work", "Social relationships", "Financial concerns",
				"Family issues", "Health concerns", "Future uncertainty",
			},
		},
		{
			ID:       3,
			Question: "How often have you engaged in self-care activities this week?",
			Type:     model.SurveyTypeRadio,
			Options:  []string{"Never", "Rarely", "Sometimes", "Often", "Daily"},
		},
		{
			ID:       4,
			Question: "What wellness resources would be most helpful to you?",
			Type:     model.SurveyTypeMultiSelect,
			Options: []string{
				"Counseling services", "Stress management workshops", "Meditation resources",
				"Peer support groups", "Mental health apps", "Exercise programs",
			},
		},
	}
}

package repository

import (
	"personalityai-service/internal/domain/entity"
)

// Seed content used when the snapshot store holds no saved collection yet

func seedServices() []*entity.Service {
	return []*entity.Service{
		{
			ID:          "s1",
			Name:        "Clinical Assessment",
			Description: "Comprehensive evaluation using AI-driven diagnostics for diagnostic clarity.",
			Price:       "₹15,000",
			Icon:        "Brain",
		},
		{
			ID:          "s2",
			Name:        "Cognitive Behavioral Therapy",
			Description: "Evidence-based therapy focusing on changing destructive thought patterns.",
			Price:       "₹4,500/session",
			Icon:        "MessageSquare",
		},
		{
			ID:          "s3",
			Name:        "Family Counseling",
			Description: "Specialized support for families navigating personality disorder diagnoses.",
			Price:       "₹6,000/session",
			Icon:        "Users",
		},
	}
}

func seedDoctors() []*entity.Doctor {
	return []*entity.Doctor{
		{
			ID:        "d1",
			Name:      "Dr. Ramakant Gadiwan",
			Specialty: "Psychological Health Care Counselling & Hypnotherapy Centre (Certified UK & USA)",
			Image:     "https://picsum.photos/seed/drgadiwan/400/400",
			Bio:       "Lead specialist in advanced personality diagnostics and therapeutic hypnotherapy. Internationally certified expert bridging clinical practice and technological innovation.",
			Rating:    5.0,
		},
		{
			ID:        "d2",
			Name:      "Dr. Sarah Mitchell",
			Specialty: "Lead Psychiatrist & AI Specialist",
			Image:     "https://picsum.photos/seed/doc1/400/400",
			Bio:       "Pioneer in utilizing machine learning for early detection of Cluster B disorders.",
			Rating:    4.8,
		},
	}
}

func seedArticles() []*entity.Article {
	return []*entity.Article{
		{
			ID:       "a1",
			Title:    "Understanding Borderline Personality Disorder",
			Excerpt:  "Identifying early signs and effective management strategies for BPD.",
			Content:  "Long form content goes here...",
			Date:     "Oct 12, 2023",
			Category: "Education",
			Image:    "https://picsum.photos/seed/art1/800/400",
		},
		{
			ID:       "a2",
			Title:    "The Role of AI in Mental Health",
			Excerpt:  "How data-driven insights are revolutionizing clinical psychiatry.",
			Content:  "Long form content goes here...",
			Date:     "Nov 05, 2023",
			Category: "Technology",
			Image:    "https://picsum.photos/seed/art2/800/400",
		},
	}
}

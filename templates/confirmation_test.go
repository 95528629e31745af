package templates_test

import (
	"strings"
	"testing"

	"personalityai-service/internal/domain/entity"
	"personalityai-service/templates"

	"github.com/stretchr/testify/require"
)

func TestConfirmationSubject(t *testing.T) {
	require.Equal(t,
		"Confirmed: Clinical Assessment - Clinical Detection Roadmap Attached",
		templates.ConfirmationSubject("Clinical Assessment"))

	require.Equal(t,
		"Confirmed: Assessment - Clinical Detection Roadmap Attached",
		templates.ConfirmationSubject(""))
}

func TestConfirmationBody_FullContent(t *testing.T) {
	apt := &entity.Appointment{
		PatientName:     "Jane Doe",
		Date:            "2024-06-01",
		Time:            "10:00",
		ClinicalHistory: "reports anxiety",
	}

	body := templates.ConfirmationBody(apt, "Clinical Assessment", "Dr. Ramakant Gadiwan")

	require.True(t, strings.HasPrefix(body, "Dear Jane Doe,"))
	require.Contains(t, body, "Your appointment for Clinical Assessment with Dr. Ramakant Gadiwan is confirmed for 2024-06-01 at 10:00.")
	require.Contains(t, body, "Note on Clinical Intake: reports anxiety")
	for _, point := range templates.ClinicalRoadmap {
		require.Contains(t, body, point)
	}
	require.True(t, strings.HasSuffix(body, "Best regards,\nThe Clinical Team at PersonalityAI"))
}

func TestConfirmationBody_OmitsEmptyIntakeNote(t *testing.T) {
	apt := &entity.Appointment{PatientName: "Jane Doe", Date: "2024-06-01", Time: "10:00"}

	body := templates.ConfirmationBody(apt, "Clinical Assessment", "Dr. Ramakant Gadiwan")
	require.NotContains(t, body, "Note on Clinical Intake")
}

func TestConfirmationBody_FallbacksForMissingReferences(t *testing.T) {
	apt := &entity.Appointment{PatientName: "Jane Doe", Date: "2024-06-01", Time: "10:00"}

	body := templates.ConfirmationBody(apt, "", "")
	require.Contains(t, body, "Your appointment for Assessment with Specialist is confirmed")
}

func TestClinicalRoadmap_TenOrderedPoints(t *testing.T) {
	require.Len(t, templates.ClinicalRoadmap, 10)
	require.Equal(t, "1) The Challenge of Personality Disorder Diagnosis", templates.ClinicalRoadmap[0])
	require.Equal(t, "10) Future Directions & Opportunities", templates.ClinicalRoadmap[9])
}

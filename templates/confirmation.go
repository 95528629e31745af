package templates

import (
	"fmt"
	"strings"

	"personalityai-service/internal/domain/entity"
)

// Display fallbacks when the referenced service or doctor no longer exists
const (
	FallbackServiceName = "Assessment"
	FallbackDoctorName  = "Specialist"
)

// ClinicalRoadmap is the fixed 10-point disclosure list attached to every
// confirmation notification
var ClinicalRoadmap = []string{
	"1) The Challenge of Personality Disorder Diagnosis",
	"2) AI-Powered Detection Framework",
	"3) Digital Phenotyping & Behavioral Data",
	"4) Machine Learning Architectures",
	"5) Cloud Infrastructure & Security",
	"6) Clinical Validation & Performance",
	"7) Regulatory Landscape & Compliance",
	"8) Ethical Considerations & Bias Mitigation",
	"9) Implementation Barriers & Solutions",
	"10) Future Directions & Opportunities",
}

// ConfirmationSubject builds the subject line for a confirmed appointment
func ConfirmationSubject(serviceName string) string {
	if serviceName == "" {
		serviceName = FallbackServiceName
	}
	return fmt.Sprintf("Confirmed: %s - Clinical Detection Roadmap Attached", serviceName)
}

// ConfirmationBody builds the patient-facing confirmation message,
// referencing the chosen service and doctor, the slot, the optional clinical
// intake note and the clinical roadmap
func ConfirmationBody(apt *entity.Appointment, serviceName, doctorName string) string {
	if serviceName == "" {
		serviceName = FallbackServiceName
	}
	if doctorName == "" {
		doctorName = FallbackDoctorName
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", apt.PatientName)
	fmt.Fprintf(&b, "Your appointment for %s with %s is confirmed for %s at %s.\n\n", serviceName, doctorName, apt.Date, apt.Time)

	if apt.ClinicalHistory != "" {
		fmt.Fprintf(&b, "Note on Clinical Intake: %s\n\n", apt.ClinicalHistory)
	}

	b.WriteString("As part of our AI-Integrated Diagnostic Protocol, your session will follow our advanced clinical roadmap:")
	for _, point := range ClinicalRoadmap {
		fmt.Fprintf(&b, "\n- %s", point)
	}
	b.WriteString("\n\nPlease ensure you have completed the online screening tool prior to your visit. Your data is protected by our Cloud Infrastructure & Security protocols.\n\n")
	b.WriteString("Best regards,\nThe Clinical Team at PersonalityAI")

	return b.String()
}

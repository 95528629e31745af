package templates

import (
	"fmt"
)

// screeningPrompt is the fixed instruction template for the classification
// call. The model is steered toward educational markers, never diagnoses,
// and must close with a disclaimer.
const screeningPrompt = `Perform a preliminary, HIPAA-aware psychological screening analysis based on the following user input: %q.

TASK:
1. Analyze the described behaviors and thought patterns.
2. Suggest potential clinical categories or specific personality disorder markers for professional discussion.

Look specifically for markers such as:
- Cluster A (Odd/Eccentric): Persistent distrust or suspiciousness (Paranoid), detachment from social relationships and restricted emotional expression (Schizoid), or eccentricities of behavior and cognitive/perceptual distortions such as "magical thinking" (Schizotypal).
- Cluster B (Dramatic/Erratic): Disregard for rights of others or lack of remorse (Antisocial), pervasive instability of interpersonal relationships, self-image, and affects, often involving "splitting" or extreme fear of abandonment (Borderline), excessive emotionality and attention seeking (Histrionic), or grandiosity and a deep need for admiration (Narcissistic).
- Cluster C (Anxious/Fearful): Social inhibition and hypersensitivity to negative evaluation or rejection (Avoidant), submissive and clinging behavior related to an excessive need to be taken care of (Dependent), or preoccupation with orderliness, perfectionism, and mental/interpersonal control (Obsessive-Compulsive).

3. Categorize these strictly as "Educational Markers for Discussion" and NOT as clinical diagnoses.
4. Maintain a supportive, clinical, and professional tone.

Disclaimer: You are an AI, not a clinical professional. Emphasize that this is for informational purposes to facilitate a session with Dr. Ramakant Gadiwan or another specialist.`

// ScreeningPrompt interpolates the user's free-text description into the
// instruction template
func ScreeningPrompt(input string) string {
	return fmt.Sprintf(screeningPrompt, input)
}

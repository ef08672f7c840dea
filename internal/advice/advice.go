// Package advice implements the keyword-matched health assistant responses.
package advice

import "strings"

// rule pairs a keyword group with its canned response. Rules are evaluated
// in order and the first group with any substring match wins, so broader
// groups ("doctor") must stay below the more specific symptom groups.
type rule struct {
	keywords []string
	response string
}

var rules = []rule{
	{
		keywords: []string{"fever", "temperature"},
		response: "For fever management:\n• Rest and stay hydrated\n• Take temperature regularly\n• Consider over-the-counter fever reducers if needed\n• Seek medical attention if fever persists over 3 days or exceeds 103°F (39.4°C)\n• If you're a migrant worker, ensure you have access to medical care and don't hesitate to visit a healthcare facility.",
	},
	{
		keywords: []string{"headache", "head pain"},
		response: "For headache relief:\n• Ensure adequate hydration\n• Get proper rest in a quiet, dark room\n• Consider gentle neck and shoulder stretches\n• Apply cold or warm compress\n• If headaches are frequent or severe, please consult a doctor\n• For migrant workers: workplace stress can contribute to headaches - ensure proper work-rest balance.",
	},
	{
		keywords: []string{"cough", "cold"},
		response: "For cough and cold symptoms:\n• Stay hydrated with warm fluids\n• Get plenty of rest\n• Use honey for soothing throat irritation\n• Consider steam inhalation\n• Avoid smoking and secondhand smoke\n• If symptoms persist beyond a week or worsen, seek medical care\n• Wear a mask around others to prevent spread.",
	},
	{
		keywords: []string{"appointment", "doctor"},
		response: "To book a medical appointment:\n• Use the 'Appointments' section in this app\n• Call your preferred hospital/clinic directly\n• For emergencies, visit the nearest emergency room\n• Keep your ABHA ID and identification ready\n• If you're a migrant worker, some states offer special health schemes - check with local authorities.",
	},
	{
		keywords: []string{"vaccination", "vaccine"},
		response: "About vaccinations:\n• Keep your vaccination records updated in this app\n• Follow the national immunization schedule\n• For travel, check required vaccinations for your destination\n• COVID-19 vaccines are available at government centers\n• Migrant workers should ensure they're up-to-date with required vaccines for their work location.",
	},
	{
		keywords: []string{"emergency", "urgent"},
		response: "In case of medical emergency:\n• Call 102 (ambulance) or 108 (emergency services) immediately\n• Go to the nearest hospital emergency department\n• Keep your emergency contact information updated\n• If you're a migrant worker, inform your supervisor and ensure someone knows your location\n• Keep important medical information easily accessible.",
	},
	{
		keywords: []string{"medicine", "medication"},
		response: "About medications:\n• Always take medicines as prescribed by your doctor\n• Set reminders for medication times\n• Keep a list of all medications you're taking\n• Don't share medications with others\n• Store medicines properly (away from heat and moisture)\n• If you miss a dose, consult your doctor or pharmacist about what to do.",
	},
	{
		keywords: []string{"diet", "food", "nutrition"},
		response: "For healthy nutrition:\n• Eat a balanced diet with fruits, vegetables, whole grains, and proteins\n• Stay hydrated - drink at least 8 glasses of water daily\n• Limit processed foods and excess sugar\n• For migrant workers: try to maintain nutritious eating habits despite work schedules\n• If you have dietary restrictions due to health conditions, follow your doctor's advice.",
	},
}

// DefaultResponse is returned when no keyword group matches.
const DefaultResponse = "I'm here to help with your health questions! I can provide general health advice, help you understand symptoms, guide you on when to seek medical care, and assist with using this health records system.\n\nFor specific medical concerns, please consult with a healthcare professional. If this is an emergency, please call 102 or visit the nearest hospital immediately.\n\nWhat specific health topic would you like to know more about?"

// Match maps free text to an advice string. It is total: every input,
// including the empty string, produces a response.
func Match(input string) string {
	lower := strings.ToLower(input)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.response
			}
		}
	}
	return DefaultResponse
}

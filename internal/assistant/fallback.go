package assistant

import (
	"strings"

	model "github.com/Amank-07/FitTracker/internal/models"
)

// fallbackRule règle mot-clé → réponse; la première qui matche gagne
type fallbackRule struct {
	keywords []string
	reply    func(user *model.UserProfile) string
}

var fallbackRules = []fallbackRule{
	{
		keywords: []string{"workout", "exercise"},
		reply: func(*model.UserProfile) string {
			return `Great question about workouts! 💪 Here are some personalized suggestions for you:

• **Beginner**: Start with bodyweight exercises like push-ups, squats, and planks
• **Intermediate**: Try circuit training with 30-45 second intervals
• **Advanced**: Consider HIIT workouts or strength training with weights

What's your current fitness level? I can provide more specific recommendations!`
		},
	},
	{
		keywords: []string{"nutrition", "diet", "food"},
		reply: func(*model.UserProfile) string {
			return `Nutrition is key to your fitness journey! 🥗 Here's some guidance:

• **Protein**: Aim for 0.8-1.2g per kg of body weight
• **Hydration**: Drink 8-10 glasses of water daily
• **Meal timing**: Eat within 30 minutes after workouts
• **Balanced meals**: Include protein, carbs, and healthy fats

Would you like me to help you create a meal plan or calculate your daily calorie needs?`
		},
	},
	{
		keywords: []string{"motivation", "motivated"},
		reply: func(*model.UserProfile) string {
			return `I understand! Motivation can be challenging. Here are some tips to stay motivated: 🔥

• **Set SMART goals**: Specific, Measurable, Achievable, Relevant, Time-bound
• **Track your progress**: Use our app to log workouts and see improvements
• **Find a workout buddy**: Accountability partners work wonders
• **Mix it up**: Try new exercises to keep things interesting
• **Celebrate small wins**: Every workout completed is a victory!

Remember: Consistency beats perfection. What's one small step you can take today?`
		},
	},
	{
		keywords: []string{"weight loss", "lose weight"},
		reply: func(*model.UserProfile) string {
			return `Weight loss is a common goal! Here's a balanced approach: ⚖️

• **Calorie deficit**: Consume fewer calories than you burn
• **Strength training**: Build muscle to boost metabolism
• **Cardio**: Include 150+ minutes of moderate cardio weekly
• **Sleep**: Aim for 7-9 hours of quality sleep
• **Stress management**: High stress can affect weight loss

The key is sustainable changes. Would you like help calculating your daily calorie needs?`
		},
	},
	{
		keywords: []string{"muscle", "build muscle"},
		reply: func(*model.UserProfile) string {
			return `Building muscle is awesome! Here's your roadmap: 🏋️‍♂️

• **Progressive overload**: Gradually increase weight or reps
• **Compound exercises**: Focus on squats, deadlifts, bench press
• **Protein intake**: 1.6-2.2g per kg of body weight
• **Rest days**: Muscles grow during recovery
• **Consistency**: Stick to your routine for 8-12 weeks

What's your current strength training experience? I can suggest specific exercises!`
		},
	},
	{
		keywords: []string{"cardio", "running", "cycling"},
		reply: func(*model.UserProfile) string {
			return `Cardio is essential for heart health! Here are some options: ❤️

• **Low intensity**: Walking, cycling, swimming (30-60 minutes)
• **Moderate intensity**: Jogging, dancing, hiking (150+ minutes/week)
• **High intensity**: HIIT, sprinting, circuit training (75+ minutes/week)

Start where you're comfortable and gradually increase intensity. What type of cardio interests you most?`
		},
	},
	{
		keywords: []string{"hello", "hi", "hey"},
		reply: func(user *model.UserProfile) string {
			name := "there"
			if user != nil && user.Name != "" {
				name = user.Name
			}
			return "Hello " + name + "! 👋 How can I help you with your fitness journey today? I'm here to provide personalized guidance for workouts, nutrition, motivation, and more!"
		},
	},
	{
		keywords: []string{"thank"},
		reply: func(*model.UserProfile) string {
			return `You're very welcome! 😊 I'm here to support your fitness journey. Don't hesitate to ask if you need more guidance on workouts, nutrition, or motivation. Keep up the great work! 💪`
		},
	},
}

// FallbackReply répondeur local déterministe, sans aucun appel réseau.
// Les règles sont évaluées dans l'ordre, la première qui matche gagne,
// sinon réponse générique.
func FallbackReply(message string, user *model.UserProfile) string {
	lower := strings.ToLower(message)

	for _, rule := range fallbackRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.reply(user)
			}
		}
	}

	return `That's an interesting question! 🤔 While I can provide general fitness guidance, for specific medical advice, please consult with a healthcare professional.

I can help you with:
• Workout plans and exercises
• Nutrition and meal planning
• Motivation and goal setting
• Fitness tracking tips
• General health and wellness

What specific area would you like to explore?`
}

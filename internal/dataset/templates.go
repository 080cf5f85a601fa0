package dataset

// Template pools for conversation synthesis. Phrasings containing %s
// are filled with the glossary term (or both terms for comparisons).

var personas = [][]string{
	{"I'm a financial advisor with 15 years of experience.", "I enjoy helping people understand money matters."},
	{"I work at a bank and love explaining financial concepts.", "I believe everyone should understand basic finance."},
	{"I'm studying finance in college.", "I like to share what I learn with others."},
	{"I'm a certified financial planner.", "I specialize in personal finance education."},
	{"I'm new to finance but learning quickly.", "I enjoy discussing financial concepts."},
	{"I'm a financial specialist with 15 years of experience.", "I'm passionate about financial literacy."},
}

var contexts = []string{
	"financial_advice",
	"banking_basics",
	"investment_knowledge",
	"financial_literacy",
}

var greetingStarters = []string{
	"Hi, I'd like to learn about finance.",
	"Hello, could you help me understand some financial terms?",
	"Good morning! I need help understanding financial concepts.",
	"Hey there. I'm trying to learn about money and banking.",
	"Hi, I'm new to finance and need some guidance.",
	"Hello! I'm looking to improve my financial literacy.",
	"Good afternoon! Can you teach me about financial terms?",
	"Hi! I want to understand banking better.",
	"Hey! I'm interested in learning about finance.",
	"Hello, could you help explain some financial concepts?",
}

var greetingResponses = []string{
	"Hello! I'd be happy to help you learn about finance. What would you like to know?",
	"Hi there! Of course, I can help explain financial concepts. Where would you like to start?",
	"Welcome! I'm here to help you understand finance better. What topics interest you?",
	"Hello! I'd love to help you learn. Is there a specific financial term you're curious about?",
	"Hi! Financial literacy is important, and I'm here to help. What would you like to learn first?",
	"Good to meet you! I can explain financial concepts in simple terms. What would you like to know?",
	"Hello! Learning about finance is a great goal. Where shall we begin?",
	"Hi there! I'm happy to guide you through financial concepts. What interests you most?",
	"Welcome! I can help make finance easier to understand. What would you like to learn about?",
	"Hello! Understanding finance is important. Which topics would you like to explore?",
}

var starterQuestions = []string{
	"Can you explain what %s means?",
	"What is %s?",
	"I keep hearing about %s, what does it mean?",
	"Could you help me understand %s?",
	"What does %s mean in finance?",
}

var followupPrevious = []string{
	"I've heard of %s, but I'm not sure what it means.",
	"Could you tell me more about %s?",
	"What exactly is %s?",
	"I need to understand %s better.",
}

var followupQuestions = []string{
	"Thanks! How does %s affect my finances?",
	"I see. Could you give me an example of %s in practice?",
	"That helps! When should I be concerned about %s?",
	"Interesting! How is %s related to other financial concepts?",
	"Now I understand %s better. What else should I know about it?",
}

var followupClosings = []string{
	"Would you like to learn about related financial concepts?",
	"I can explain how this applies in different situations.",
	"There are several important aspects to consider.",
	"This concept is particularly important for financial planning.",
	"Understanding this can help with making better financial decisions.",
}

var comparisonQuestions = []string{
	"What's the difference between %s and %s?",
	"Can you explain how %s differs from %s?",
	"I'm confused about %s and %s, can you help?",
	"Could you compare %s and %s?",
	"How are %s and %s different?",
}

var comparisonAnswers = []string{
	"Let me explain the difference between %s and %s. %s is %s, whereas %s is %s. Would you like to know more about either of these concepts?",
	"I'll explain the difference between %s and %s. %s is %s, while %s is %s. Understanding these differences is crucial for making financial decisions.",
	"Let me clarify the difference between %s and %s. %s is %s, but %s is %s. Would you like to explore other related financial concepts?",
}

var adviceSuggestions = []string{
	"Let me know if you need any other terms explained.",
	"I can help you understand more financial concepts.",
	"Would you like to learn about related terms?",
}

var bankingSuggestions = []string{
	"I can explain other banking terms if you'd like.",
	"There are many other important terms to learn.",
	"Let me know if you have questions about other terms.",
}

var investmentSuggestions = []string{
	"I'm happy to explain more financial concepts.",
	"Feel free to ask about other terms.",
	"Would you like to learn about other financial terms?",
}

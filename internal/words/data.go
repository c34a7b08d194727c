package words

var dailySets = []DailySet{
	{
		Day: 1,
		Words: []Word{
			{
				Word:        "Hello",
				Translation: "مرحباً",
				Examples: []string{
					"Hello, how are you?",
					"She gave a friendly hello.",
					"Hello, is anyone there?",
					"You had me at hello.",
					"Say hello to your family for me.",
				},
			},
			{
				Word:        "Good",
				Translation: "جيد",
				Examples: []string{
					"This is a good book.",
					"He did a good job.",
					"She is a good person.",
					"Have a good day!",
					"The weather is good today.",
				},
			},
			{
				Word:        "Yes",
				Translation: "نعم",
				Examples: []string{
					"Yes, I understand.",
					"He asked if I was ready, and I said yes.",
					"Yes, that is correct.",
					"Are you coming? Yes, I am.",
					"Yes, you can borrow my pen.",
				},
			},
			{
				Word:        "No",
				Translation: "لا",
				Examples: []string{
					"No, thank you.",
					"The answer is no.",
					"There are no cookies left.",
					"No, I have not seen him.",
					"She said no to his proposal.",
				},
			},
			{
				Word:        "Please",
				Translation: "من فضلك",
				Examples: []string{
					"Can you help me, please?",
					"Please, sit down.",
					"Could I have some water, please?",
					"Listen carefully, please.",
					"Yes, please. I would like some tea.",
				},
			},
		},
	},
	{
		Day: 2,
		Words: []Word{
			{
				Word:        "Thank you",
				Translation: "شكراً لك",
				Examples: []string{
					"Thank you for your help.",
					"She said thank you for the gift.",
					"I want to thank you for everything.",
					"A big thank you to all our supporters.",
					"Thank you, I appreciate it.",
				},
			},
			{
				Word:        "Sorry",
				Translation: "آسف",
				Examples: []string{
					"I am sorry for being late.",
					"Sorry, I didn't hear you.",
					"He was sorry for what he had done.",
					"She felt sorry for the little bird.",
					"I'm sorry, but I can't help you.",
				},
			},
			{
				Word:        "Water",
				Translation: "ماء",
				Examples: []string{
					"I need a glass of water.",
					"The plants need more water.",
					"He jumped into the cold water.",
					"Water is essential for life.",
					"Remember to drink plenty of water.",
				},
			},
			{
				Word:        "Food",
				Translation: "طعام",
				Examples: []string{
					"The food is delicious.",
					"What is your favorite food?",
					"We need to buy some food.",
					"They serve excellent food at that restaurant.",
					"Fast food is not very healthy.",
				},
			},
			{
				Word:        "House",
				Translation: "منزل",
				Examples: []string{
					"This is my house.",
					"She lives in a big house.",
					"They are building a new house.",
					"Welcome to our house.",
					"The house has a beautiful garden.",
				},
			},
		},
	},
	{
		Day: 3,
		Words: []Word{
			{
				Word:        "Today",
				Translation: "اليوم",
				Examples: []string{
					"Today is a beautiful day.",
					"What are you doing today?",
					"I have a meeting today.",
					"Today is my birthday.",
					"Let's finish this today.",
				},
			},
			{
				Word:        "Tomorrow",
				Translation: "غداً",
				Examples: []string{
					"I will see you tomorrow.",
					"Tomorrow is another day.",
					"The weather will be sunny tomorrow.",
					"What are your plans for tomorrow?",
					"The deadline is tomorrow.",
				},
			},
			{
				Word:        "Friend",
				Translation: "صديق",
				Examples: []string{
					"He is my best friend.",
					"A true friend is always there for you.",
					"I made a new friend at the park.",
					"She went to the cinema with a friend.",
					"It's good to have friends you can trust.",
				},
			},
			{
				Word:        "School",
				Translation: "مدرسة",
				Examples: []string{
					"The children go to school.",
					"What school do you go to?",
					"She is a teacher at a primary school.",
					"I learned a lot in school today.",
					"He walks to school every morning.",
				},
			},
			{
				Word:        "Work",
				Translation: "عمل",
				Examples: []string{
					"I have to go to work.",
					"He works as an engineer.",
					"This is a piece of hard work.",
					"She starts work at 9 AM.",
					"It is important to have a balance between work and life.",
				},
			},
		},
	},
	{
		Day: 4,
		Words: []Word{
			{
				Word:        "Happy",
				Translation: "سعيد",
				Examples: []string{
					"She looks very happy.",
					"I am so happy to see you.",
					"This is the happiest day of my life.",
					"A happy child.",
					"He has a happy smile.",
				},
			},
			{
				Word:        "Sad",
				Translation: "حزين",
				Examples: []string{
					"Why are you sad?",
					"It was a sad story.",
					"She felt sad when he left.",
					"He gave me a sad look.",
					"Don't be sad, everything will be okay.",
				},
			},
			{
				Word:        "Big",
				Translation: "كبير",
				Examples: []string{
					"That is a big elephant.",
					"He has a big house in the city.",
					"It was a big surprise.",
					"She made a big mistake.",
					"New York is a very big city.",
				},
			},
			{
				Word:        "Small",
				Translation: "صغير",
				Examples: []string{
					"This is a small cat.",
					"I live in a small apartment.",
					"Even a small donation can help.",
					"He started a small business.",
					"It's a small world.",
				},
			},
			{
				Word:        "Love",
				Translation: "حب",
				Examples: []string{
					"I love my family.",
					"She has a great love for music.",
					"Love is a beautiful feeling.",
					"They fell in love at first sight.",
					"He sent his love to everyone.",
				},
			},
		},
	},
}

package questionnaire

var generalSections = []Section{
	{
		Category:   DeeplyFeeling,
		Title:      "Type 1: Deeply Feeling / Sensitive",
		ShortTitle: "Type 1",
		Questions: []Question{
			{ID: "t1_q1", Text: "My child tears up or feels deeply when hearing sad stories, even about people they don’t know."},
			{ID: "t1_q2", Text: "My child talks about how others might be feeling or seems emotionally tuned in."},
			{ID: "t1_q3", Text: "My child avoids movies, sounds, or books that seem too emotional or upsetting."},
			{ID: "t1_q4", Text: "My child notices tone of voice changes and asks if someone is angry or sad."},
			{ID: "t1_q5", Text: "My child overthinks small mistakes and talks about them for days."},
			{ID: "t1_q6", Text: "My child is easily overwhelmed by strong feelings, even good ones like excitement."},
			{ID: "t1_q7", Text: "My child often says things like 'That hurts my feelings,' even when others think it wasn’t a big deal."},
		},
		Description: "Deeply Feeling children are highly empathetic and sensitive to emotional nuances. They feel things intensely and may need support in navigating their rich inner world. They often possess great compassion and creativity.",
	},
	{
		Category:   HighlyReactive,
		Title:      "Type 2: Highly Reactive / Big Reactor",
		ShortTitle: "Type 2",
		Questions: []Question{
			{ID: "t2_q1", Text: "My child reacts with big emotions quickly, even over small problems."},
			{ID: "t2_q2", Text: "My child goes from calm to very upset or very excited in a flash."},
			{ID: "t2_q3", Text: "My child struggles to calm down once upset."},
			{ID: "t2_q4", Text: "My child often says or does things impulsively and regrets them later."},
			{ID: "t2_q5", Text: "My child’s joy or excitement can be just as overwhelming as their frustration."},
			{ID: "t2_q6", Text: "My child gets upset when things don’t go their way and may take it personally."},
			{ID: "t2_q7", Text: "My child sometimes explodes emotionally when feeling misunderstood or rushed."},
		},
		Description: "Highly Reactive children experience emotions with great intensity and speed. Their reactions can be sudden and powerful. They benefit from learning emotional regulation skills and having their strong feelings validated.",
	},
	{
		Category:   SlowToWarmUp,
		Title:      "Type 3: Slow to Warm Up / Cautious",
		ShortTitle: "Type 3",
		Questions: []Question{
			{ID: "t3_q1", Text: "My child takes a long time to enter new playgroups or social settings."},
			{ID: "t3_q2", Text: "My child watches silently before joining others and often waits to be invited."},
			{ID: "t3_q3", Text: "My child sticks closely to routines and resists sudden changes."},
			{ID: "t3_q4", Text: "My child asks a lot of questions before agreeing to go somewhere new or try something new."},
			{ID: "t3_q5", Text: "My child seems to 'freeze' rather than cry or react when stressed."},
			{ID: "t3_q6", Text: "My child takes a long time to warm up to adults, even familiar ones."},
			{ID: "t3_q7", Text: "My child prefers playing alone or with one trusted friend rather than groups."},
		},
		Description: "Slow to Warm Up children are observant and cautious. They prefer predictability and take time to feel comfortable in new situations or with new people. Once they adapt, they are often thoughtful and engaged participants.",
	},
	{
		Category:   HighEnergy,
		Title:      "Type 4: High Energy / Sensory Seeking",
		ShortTitle: "Type 4",
		Questions: []Question{
			{ID: "t4_q1", Text: "My child loves to move constantly—running, climbing, bouncing, or spinning."},
			{ID: "t4_q2", Text: "My child struggles with sitting still for quiet activities or meals."},
			{ID: "t4_q3", Text: "My child enjoys rough play and seeks big movement input."},
			{ID: "t4_q4", Text: "My child is often loud, active, and full of energy from morning to night."},
			{ID: "t4_q5", Text: "My child gets bored easily and needs constant stimulation."},
			{ID: "t4_q6", Text: "My child enjoys physical or risky play that others find too wild."},
			{ID: "t4_q7", Text: "My child moves even when watching a screen or doing something fun."},
		},
		Description: "High Energy children are often on the go, seeking sensory input and physical activity. They are typically enthusiastic and curious, thriving in environments that offer plenty of movement and stimulation.",
	},
	{
		Category:   LowEnergy,
		Title:      "Type 5: Low Energy / Sensory Avoidant",
		ShortTitle: "Type 5",
		Questions: []Question{
			{ID: "t5_q1", Text: "My child avoids loud, messy, or chaotic environments."},
			{ID: "t5_q2", Text: "My child prefers soft, quiet play and seems overwhelmed in groups."},
			{ID: "t5_q3", Text: "My child is bothered by certain textures in food or clothing."},
			{ID: "t5_q4", Text: "My child often retreats to a quiet space or room to recharge."},
			{ID: "t5_q5", Text: "My child avoids trying new sensory experiences (foods, clothes, materials)."},
			{ID: "t5_q6", Text: "My child becomes tired or grumpy more quickly than peers in busy settings."},
			{ID: "t5_q7", Text: "My child is highly selective about physical contact or touch."},
		},
		Description: "Low Energy children, or those who are sensory avoidant, can be sensitive to their environment and may become easily overwhelmed by too much stimulation. They often prefer calmer, quieter activities and may need downtime to recharge.",
	},
	{
		Category:   EmotionallySelfContained,
		Title:      "Type 6: Emotionally Self-Contained / Steady",
		ShortTitle: "Type 6",
		Questions: []Question{
			{ID: "t6_q1", Text: "My child is usually calm and handles redirection without a big reaction."},
			{ID: "t6_q2", Text: "My child rarely has emotional outbursts or major mood swings."},
			{ID: "t6_q3", Text: "My child seems content to go with the flow in most situations."},
			{ID: "t6_q4", Text: "My child may not show big excitement but is generally peaceful and pleasant."},
			{ID: "t6_q5", Text: "My child is easy to be around and often helps others stay calm too."},
			{ID: "t6_q6", Text: "My child keeps feelings inside and may need encouragement to open up."},
			{ID: "t6_q7", Text: "My child is flexible and adaptable without much need for preparation."},
		},
		Description: "Emotionally Self-Contained children are often calm, adaptable, and even-keeled. They tend to handle stress well and go with the flow. They may need encouragement to express their deeper feelings.",
	},
}

var toddlerSections = []Section{
	{
		Category:   DeeplyFeeling,
		Title:      "Type 1: Deeply Feeling / Sensitive (Toddler)",
		ShortTitle: "Type 1",
		Questions: []Question{
			{ID: "tt1_q1", Text: "Does your toddler cry intensely when separated from a caregiver, even briefly?"},
			{ID: "tt1_q2", Text: "Do they show strong empathy — e.g., get distressed when others cry?"},
			{ID: "tt1_q3", Text: "Are they deeply upset by “no” or correction, even if spoken gently?"},
			{ID: "tt1_q4", Text: "Do they cling for long periods after getting hurt emotionally or physically?"},
			{ID: "tt1_q5", Text: "Do they seem to remember emotional experiences for a long time?"},
			{ID: "tt1_q6", Text: "Are they very attached to specific routines, people, or comfort objects?"},
			{ID: "tt1_q7", Text: "Do they show big reactions to both positive and negative events?"},
		},
		Description: "Deeply Feeling children are highly empathetic and sensitive to emotional nuances. They feel things intensely and may need support in navigating their rich inner world. They often possess great compassion and creativity.",
	},
	{
		Category:   HighlyReactive,
		Title:      "Type 2: Highly Reactive / Big Reactor (Toddler)",
		ShortTitle: "Type 2",
		Questions: []Question{
			{ID: "tt2_q1", Text: "Does your toddler often cry or fuss when exposed to loud sounds or bright lights?"},
			{ID: "tt2_q2", Text: "Do they startle easily, even with soft sounds or gentle touch?"},
			{ID: "tt2_q3", Text: "Is it hard for them to settle when routines are disrupted?"},
			{ID: "tt2_q4", Text: "Do they resist being passed from one adult to another?"},
			{ID: "tt2_q5", Text: "Are they picky about textures (clothes, blankets, food)?"},
			{ID: "tt2_q6", Text: "Do they notice small changes in the environment (e.g., new furniture, lighting)?"},
			{ID: "tt2_q7", Text: "Do they take longer than other toddlers to fall asleep or stay asleep?"},
		},
		Description: "Highly Reactive children experience emotions with great intensity and speed. Their reactions can be sudden and powerful. They benefit from learning emotional regulation skills and having their strong feelings validated.",
	},
	{
		Category:   SlowToWarmUp,
		Title:      "Type 3: Slow to Warm Up / Cautious (Toddler)",
		ShortTitle: "Type 3",
		Questions: []Question{
			{ID: "tt3_q1", Text: "Does your toddler need a long time before joining new people or spaces?"},
			{ID: "tt3_q2", Text: "Do they watch others play before participating?"},
			{ID: "tt3_q3", Text: "Are they slower to smile or respond in unfamiliar settings?"},
			{ID: "tt3_q4", Text: "Do they cling to you in new environments, even if other kids are playing?"},
			{ID: "tt3_q5", Text: "Do they show hesitation or fear toward new toys, sounds, or foods?"},
			{ID: "tt3_q6", Text: "Is their mood calm at home but quiet or withdrawn in public?"},
			{ID: "tt3_q7", Text: "Do they prefer routine and dislike surprises or sudden transitions?"},
		},
		Description: "Slow to Warm Up children are observant and cautious. They prefer predictability and take time to feel comfortable in new situations or with new people. Once they adapt, they are often thoughtful and engaged participants.",
	},
	{
		Category:   HighEnergy,
		Title:      "Type 4: High Energy / Sensory Seeking (Toddler)",
		ShortTitle: "Type 4",
		Questions: []Question{
			{ID: "tt4_q1", Text: "Is your toddler constantly moving — climbing, running, or bouncing?"},
			{ID: "tt4_q2", Text: "Do they struggle with sitting still even for short activities?"},
			{ID: "tt4_q3", Text: "Do they wake up energetic and stay active until bedtime?"},
			{ID: "tt4_q4", Text: "Do they explore fearlessly, often before understanding safety?"},
			{ID: "tt4_q5", Text: "Is it hard to redirect them from physical play without a meltdown?"},
			{ID: "tt4_q6", Text: "Do they use physical play (like wrestling or jumping) to release frustration?"},
			{ID: "tt4_q7", Text: "Do they often seem “more energetic” than their peers?"},
		},
		Description: "High Energy children are often on the go, seeking sensory input and physical activity. They are typically enthusiastic and curious, thriving in environments that offer plenty of movement and stimulation.",
	},
	{
		Category:   LowEnergy,
		Title:      "Type 5: Low Energy / Sensory Avoidant (Toddler)",
		ShortTitle: "Type 5",
		Questions: []Question{
			{ID: "tt5_q1", Text: "Does your toddler often stay in one place for long periods, calmly observing others?"},
			{ID: "tt5_q2", Text: "Do they seem content sitting or lying down quietly without a strong need to move?"},
			{ID: "tt5_q3", Text: "Are their facial expressions more neutral, with mild reactions to excitement or upset?"},
			{ID: "tt5_q4", Text: "Do they take longer to respond to your voice or new toys?"},
			{ID: "tt5_q5", Text: "Are they slow but steady in developmental milestones — not delayed, just unhurried?"},
			{ID: "tt5_q6", Text: "Do they tire easily after activity or become quiet instead of cranky?"},
			{ID: "tt5_q7", Text: "Do they seem calm even in situations that make other toddlers reactive or emotional?"},
		},
		Description: "Low Energy children, or those who are sensory avoidant, can be sensitive to their environment and may become easily overwhelmed by too much stimulation. They often prefer calmer, quieter activities and may need downtime to recharge.",
	},
	{
		Category:   EmotionallySelfContained,
		Title:      "Type 6: Emotionally Self-Contained / Steady (Toddler)",
		ShortTitle: "Type 6",
		Questions: []Question{
			{ID: "tt6_q1", Text: "Does your toddler adjust easily to new people and places?"},
			{ID: "tt6_q2", Text: "Do they calm quickly after being upset?"},
			{ID: "tt6_q3", Text: "Are they content to play alone or with others without strong preferences?"},
			{ID: "tt6_q4", Text: "Do they tolerate small changes in routines or schedules without distress?"},
			{ID: "tt6_q5", Text: "Do they nap and eat easily in different environments?"},
			{ID: "tt6_q6", Text: "Are their reactions to pain or frustration usually mild or brief?"},
			{ID: "tt6_q7", Text: "Do they rarely show extreme emotional highs or lows?"},
		},
		Description: "Emotionally Self-Contained children are often calm, adaptable, and even-keeled. They tend to handle stress well and go with the flow. They may need encouragement to express their deeper feelings.",
	},
}

package curriculum

// The mentoring curriculum: 6 stages, 34 tasks. Edits here change what the
// mentor teaches; the engine only reads it.
var stages = []Stage{
	{
		ID: 1, Title: "Discover", Subtitle: "Problem Validation", Icon: "🔍", Color: "#E8553A",
		Tagline:  "Is this a burning hair problem?",
		Overview: "Validate your problem is real, urgent, and worth solving. Listen before you build.",
		Tasks: []Task{
			{
				ID: "1.1", Title: "Problem Hypothesis",
				Goal:     "Articulate a specific, testable problem hypothesis.",
				Output:   "'[Audience] struggles with [problem] because [cause]. They currently [workaround], costing them [cost].'",
				Criteria: "All 5 parts specific. Audience defined. Problem observable.",
				Intro:    "Let's start at the foundation. Every great startup begins with a problem so painful people already spend time, money, or sanity solving it badly.\n\nI need your problem hypothesis — fill in every blank with SPECIFICS:\n\n\"[Specific audience] struggles with [specific problem] because [root cause]. Currently they handle it by [current workaround], which costs them [time/money/pain].\"\n\n'People' is not an audience. 'It's hard' is not a problem. Give me your best shot.",
				Eval:     "Check ALL 5 components. REJECT if vague. Push for specificity on each weak part.",
			},
			{
				ID: "1.2", Title: "Interview Targets",
				Goal:     "Identify 10+ people from your network connected to the problem.",
				Output:   "Numbered list of 10+ people: who, connection to problem, why their perspective matters.",
				Criteria: "10+ people. Clear connections. Mixed perspectives.",
				Intro:    "Great hypothesis. Now you need to TALK to real people before building.\n\nList 10+ people you know who touch this problem space. For each:\n1. Who they are\n2. Connection to the problem\n3. Why their perspective matters\n\nFormer colleagues, classmates, community members — dig deep.",
				Eval:     "Count entries (10+). Each needs all 3 elements. Push if under 10.",
			},
			{
				ID: "1.3", Title: "Discovery Message",
				Goal:     "Write a warm, non-salesy outreach message.",
				Output:   "Personalized message for one person: references relationship, names topic, 15-min limit, NOT selling.",
				Criteria: "Personalized, warm, about THEIR experience, not pitching.",
				Intro:    "Craft the message that gets people to say yes. #1 mistake: sounding like a founder with an agenda.\n\nFramework: \"Hey [Name], I'm exploring [problem area] and since you [connection], I'd love 15 minutes to hear how you handle [task]. Not selling — just learning.\"\n\nPersonalize for ONE person. Show me the actual message.",
				Eval:     "Would you reply? Personalized? Specific? Not salesy? Complete when compelling.",
			},
			{
				ID: "1.4", Title: "Mom Test Questions",
				Goal:     "Write 5 questions that extract honest data, not false validation.",
				Output:   "5 questions about past behavior/current reality. No hypotheticals, no leading, no yes/no.",
				Criteria: "All 5 pass Mom Test. Zero 'would you' questions.",
				Intro:    "Most founder questions get LIES. Three rules (The Mom Test):\n1. Talk about THEIR life, not your idea\n2. Ask about the PAST, not hypothetical futures\n3. Talk less, listen more\n\nWrite 5 questions. I'll grade each pass/fail.",
				Eval:     "Grade each. FAIL: 'would you', yes/no, leading. PASS: past events, workflows, decisions.",
			},
			{
				ID: "1.5", Title: "Interview Debriefs",
				Goal:     "Extract real insights from 3+ discovery conversations.",
				Output:   "3+ debriefs: who, biggest surprise, direct quote, confirmed/broken assumption.",
				Criteria: "3+ done. Genuine surprises. At least one broken assumption.",
				Intro:    "Theory's over — talk to humans.\n\nConduct 3+ calls. After each, debrief:\n1. **Who** (role/context)\n2. **Surprise** (most unexpected thing)\n3. **Quote** (exact words that stuck)\n4. **Assumption** (one belief confirmed or broken)\n\nDon't sanitize. Raw insights — especially uncomfortable ones.",
				Eval:     "3+ interviews, all elements. Push back on generic surprises.",
			},
			{
				ID: "1.6", Title: "Problem Stack",
				Goal:     "Synthesize interviews into ranked, validated problems.",
				Output:   "3-5 problems ranked: description, evidence, workaround, pain 1-10, burning hair or minor itch.",
				Criteria: "Evidence-grounded. Calibrated scores. At least one burning hair.",
				Intro:    "Synthesize your data into a ranked Problem Stack.\n\nFor each (3-5, ranked):\n- **Problem:** One sentence\n- **Evidence:** From interviews\n- **Workaround:** How they deal with it\n- **Pain (1-10):** Be honest\n- **Class:** Burning hair or minor itch",
				Eval:     "3-5 present? All elements? Scores calibrated (not all 10s)?",
			},
			{
				ID: "1.7", Title: "Step 1 Deliverable",
				Goal:     "Commit to the #1 problem with evidence-backed conviction.",
				Output:   "(1) ONE problem, (2) strongest evidence, (3) confidence 1-10 + why, (4) path to confidence 10.",
				Criteria: "All 4 present. Problem from stack. Confidence honest (5-7 normal).",
				Intro:    "Final checkpoint:\n\n1. **The ONE Problem** (one sentence)\n2. **Strongest Evidence** from interviews\n3. **Confidence (1-10)** — 6 is healthy, 10 means you're lying\n4. **Path to 10:** What would you need?\n\nThis is the foundation.",
				Eval:     "All 4 substantive. Complete when solid.",
			},
		},
	},
	{
		ID: 2, Title: "Define", Subtitle: "Solution Design", Icon: "✏️", Color: "#D97706",
		Tagline:  "Design what they'll pay for",
		Overview: "Transform validated problems into a focused solution. No building yet.",
		Tasks: []Task{
			{
				ID: "2.1", Title: "Value Prop Canvas",
				Goal:     "Map customer jobs, pains, gains from interview data.",
				Output:   "3+ Jobs, 5+ Pains, 3+ Gains — all from interviews.",
				Criteria: "Minimums met. Evidence-backed. Gains are outcomes not features.",
				Intro:    "Step 2 — designing the solution from real data.\n\n1. **Customer Jobs (3+):** What are they trying to do?\n2. **Pains (5+):** What frustrates them?\n3. **Gains (3+):** What would amazing look like?\n\nEvery item must trace to an interview.",
				Eval:     "Count, check evidence, reject generic.",
			},
			{
				ID: "2.2", Title: "Competitor Teardown",
				Goal:     "Map competitive landscape with honest analysis.",
				Output:   "3-5 alternatives: what it does, strengths, failures, why users stay. Include 1+ manual workaround.",
				Criteria: "Honest strengths. Specific failures. Manual option included.",
				Intro:    "Map the battlefield. 'No competitors' is never true.\n\n3-5 alternatives (including manual/DIY). For each:\n- What it does\n- What it does well (be honest)\n- Where it fails\n- Why users stick anyway",
				Eval:     "3-5 present? Nuanced? Manual included?",
			},
			{
				ID: "2.3", Title: "Unfair Advantage",
				Goal:     "Identify ONE capability making your solution uniquely effective.",
				Output:   "'My unfair advantage is [capability] → users can [outcome] → alternatives can't because [reason].'",
				Criteria: "Specific. Solves #1 pain. Credible moat.",
				Intro:    "What's your ONE unfair advantage?\n\nFormat: \"My unfair advantage is [capability] → users can [outcome] → alternatives can't because [reason].\"\n\n'We use AI' is not an answer.",
				Eval:     "Reject generic. Must connect to #1 pain.",
			},
			{
				ID: "2.4", Title: "Positioning Statement",
				Goal:     "One sentence a stranger gets in 10 seconds.",
				Output:   "'For [audience] who [problem], [Product] is the [category] that [benefit], unlike [alternative] which [limitation].'",
				Criteria: "All blanks specific. Passes stranger test.",
				Intro:    "Compress everything into one sentence:\n\n\"For [audience] who [problem], [Product] is the [category] that [benefit], unlike [alternative] which [limitation].\"",
				Eval:     "Every blank specific. Complete when crisp.",
			},
			{
				ID: "2.5", Title: "Solution Reactions",
				Goal:     "Test concept with real users, capture concerns.",
				Output:   "3 reactions: who, gut reaction, biggest concern, would try early version.",
				Criteria: "3 real reactions. Specific concerns. Honest signals.",
				Intro:    "Describe your concept to 3 people:\n\n'Based on [their pain], I'm exploring [solution]. Gut reaction? What would make this useless?'\n\nFor each: who, reaction, concern, willingness to try.",
				Eval:     "3 people, all elements.",
			},
			{
				ID: "2.6", Title: "Step 2 Deliverable",
				Goal:     "Commit to solution design with validated positioning.",
				Output:   "(1) Positioning, (2) unfair advantage, (3) top concern, (4) plan to address, (5) readiness 1-10.",
				Criteria: "All 5 present and polished.",
				Intro:    "Step 2 deliverable:\n\n1. **Positioning** (final)\n2. **Unfair Advantage**\n3. **Top Concern**\n4. **Plan** to address it\n5. **Readiness (1-10)**",
				Eval:     "All 5 substantive.",
			},
		},
	},
	{
		ID: 3, Title: "Develop", Subtitle: "MVP Build", Icon: "🛠️", Color: "#059669",
		Tagline:  "Build the ugliest thing that works",
		Overview: "Build the smallest functional thing that delivers real value.",
		Tasks: []Task{
			{
				ID: "3.1", Title: "Feature Scoping",
				Goal:     "Cut to absolute minimum.",
				Output:   "IN (2-3 + why) and OUT (everything else + why waits).",
				Criteria: "IN ≤3, each essential.",
				Intro:    "List every feature, then split:\n- **IN (2-3 max):** Must exist + why\n- **OUT:** Everything else + why it waits\n\nBe ruthless.",
				Eval:     "IN ≤3. Challenge each.",
			},
			{
				ID: "3.2", Title: "Critical Path",
				Goal:     "Shortest path from first touch to aha moment.",
				Output:   "≤5 steps: user action + experience each. Aha moment labeled.",
				Criteria: "≤5 steps. Aha early.",
				Intro:    "SHORTEST path from arrival to aha moment. 5 steps MAX.",
				Eval:     "≤5, concrete, aha identified.",
			},
			{
				ID: "3.3", Title: "Build Approach",
				Goal:     "Fastest path to working product.",
				Output:   "Approach, tools, timeline ≤7 days, speed justification.",
				Criteria: "Speed-optimized. ≤7 days.",
				Intro:    "FASTEST path. Not elegant, not scalable. Fastest.\n\n1. Approach\n2. Tools\n3. Days (≤7)\n4. Why fastest",
				Eval:     "≤7 days. Speed justified.",
			},
			{
				ID: "3.4", Title: "Ship It",
				Goal:     "Build something a real person can use.",
				Output:   "What built, access, what works, what's rough, proof someone can use it.",
				Criteria: "Real thing exists. Delivers core value.",
				Intro:    "Go build. Come back with:\n1. What you built\n2. How to see it\n3. What works\n4. What's rough\n5. Proof someone can use it\n\nGO.",
				Eval:     "Something real. Complete when functional.",
			},
			{
				ID: "3.5", Title: "User Feedback",
				Goal:     "Observe real users, capture unfiltered reactions.",
				Output:   "3 users: who, behavior, where confused, core value reaction, feature request.",
				Criteria: "3 users. Behavioral observations.",
				Intro:    "3 humans use it. For each: who, what they did, where stuck, reaction, one request.",
				Eval:     "3 users, behavioral focus.",
			},
			{
				ID: "3.6", Title: "Step 3 Deliverable",
				Goal:     "Synthesize build learnings.",
				Output:   "Built + access, user quote, build-only learning, one change, ready to charge.",
				Criteria: "All 5. Genuine learning.",
				Intro:    "Step 3 deliverable:\n1. Built + access\n2. Best quote\n3. Build-only learning\n4. One change\n5. Ready to charge? yes/no + why",
				Eval:     "All 5 present.",
			},
		},
	},
	{
		ID: 4, Title: "Deploy", Subtitle: "First Revenue", Icon: "🚀", Color: "#7C3AED",
		Tagline:  "Get someone to pay you",
		Overview: "Revenue is the ultimate validation.",
		Tasks: []Task{
			{
				ID: "4.1", Title: "Pricing",
				Goal:     "Set value-based pricing.",
				Output:   "Price + model, problem cost math, value ratio, why might be too LOW.",
				Criteria: "Value-based with math.",
				Intro:    "Price based on what the problem COSTS.\n\n1. Price + model\n2. Problem cost math\n3. Value ratio\n4. Why might be too low?",
				Eval:     "Math present.",
			},
			{
				ID: "4.2", Title: "Sales Page",
				Goal:     "Clear, converting landing page.",
				Output:   "Headline, social proof, 3 benefits, CTA, URL.",
				Criteria: "Stranger gets it in 10 sec.",
				Intro:    "ONE page. Five elements:\n1. Headline\n2. Social proof\n3. 3 benefits (outcomes)\n4. CTA\n5. URL",
				Eval:     "All 5. Clear.",
			},
			{
				ID: "4.3", Title: "10 Direct Asks",
				Goal:     "Personally ask 10 people to buy.",
				Output:   "10 asks: who, response, reason. Totals.",
				Criteria: "10 documented.",
				Intro:    "Ask 10 people to buy. Report: who, response, reason. Totals.",
				Eval:     "10 asks documented.",
			},
			{
				ID: "4.4", Title: "First Sale",
				Goal:     "Convert interest into payment.",
				Output:   "Revenue yes/no, story or blocker, #1 objection, testimonial/plan.",
				Criteria: "Honest accounting.",
				Intro:    "Did anyone pay?\n\n1. Revenue details or closest lead\n2. #1 objection\n3. Testimonial or plan",
				Eval:     "Honest. Documented.",
			},
			{
				ID: "4.5", Title: "Step 4 Deliverable",
				Goal:     "Assess product-market fit.",
				Output:   "Revenue, conversion rate, why yes, top objection, PMF 1-10.",
				Criteria: "All 5 honest.",
				Intro:    "Step 4 deliverable:\n1. Revenue\n2. Conversion rate\n3. Why bought\n4. Top objection + response\n5. PMF Signal 1-10",
				Eval:     "All 5 honest.",
			},
		},
	},
	{
		ID: 5, Title: "Deepen", Subtitle: "Retention", Icon: "🔄", Color: "#2563EB",
		Tagline:  "Make them come back",
		Overview: "Why users stay, why they leave, what makes you sticky.",
		Tasks: []Task{
			{
				ID: "5.1", Title: "Retention Baseline",
				Goal:     "Establish honest retention metrics.",
				Output:   "Total users, active + definition, churned, why stayed, why left.",
				Criteria: "Honest numbers.",
				Intro:    "Retention — the metric that matters.\n\n1. Total users\n2. Active + definition\n3. Churned\n4. Why stayed\n5. Why left",
				Eval:     "Honest baseline.",
			},
			{
				ID: "5.2", Title: "Aha Moment",
				Goal:     "Action separating retained from churned.",
				Output:   "Hypothesis (specific action), evidence, time-to-aha.",
				Criteria: "Specific action, evidence-based.",
				Intro:    "What's your aha moment?\n\n1. Specific measurable action\n2. Evidence\n3. Time-to-aha",
				Eval:     "Specific, testable.",
			},
			{
				ID: "5.3", Title: "Churn Interviews",
				Goal:     "Learn why users leave.",
				Output:   "2-3 churned: who, trigger, moment stopped, what brings back, pattern.",
				Criteria: "Uncomfortable truths. Pattern.",
				Intro:    "Talk to 2-3 who left. For each: who, trigger, moment, what brings back. Pattern.",
				Eval:     "2-3 real, raw.",
			},
			{
				ID: "5.4", Title: "Retention Fix",
				Goal:     "Ship one data-driven improvement.",
				Output:   "What changed, insight, hypothesis, measurement, results.",
				Criteria: "Shipped. Data-connected.",
				Intro:    "ONE data-driven change:\n1. What changed\n2. Which insight\n3. Hypothesis\n4. Measurement\n5. Results",
				Eval:     "Shipped, connected.",
			},
			{
				ID: "5.5", Title: "Step 5 Deliverable",
				Goal:     "Retention system established.",
				Output:   "Rate, aha moment, churn reason, fix + results, ongoing system.",
				Criteria: "All 5. System repeatable.",
				Intro:    "Step 5 deliverable:\n1. Rate + definition\n2. Aha moment\n3. Churn reason\n4. Fix + results\n5. Ongoing system",
				Eval:     "All 5. System.",
			},
		},
	},
	{
		ID: 6, Title: "Dominate", Subtitle: "Growth", Icon: "📈", Color: "#BE185D",
		Tagline:  "Build the engine",
		Overview: "Repeatable growth engine. Prepare for scale.",
		Tasks: []Task{
			{
				ID: "6.1", Title: "Unit Economics",
				Goal:     "Per-customer financial engine.",
				Output:   "CAC math, LTV math, ratio, assessment, one lever.",
				Criteria: "Math shown.",
				Intro:    "Show me the math:\n1. CAC\n2. LTV\n3. Ratio (3:1+)\n4. Healthy?\n5. One lever",
				Eval:     "Math present.",
			},
			{
				ID: "6.2", Title: "Growth Channel",
				Goal:     "#1 channel from data.",
				Output:   "Customer → source, pattern, 10x plan, backup experiment.",
				Criteria: "Customers traced. Data-driven.",
				Intro:    "Where did customers come from? List each + source. Pattern. 10x plan. Backup.",
				Eval:     "Data-driven.",
			},
			{
				ID: "6.3", Title: "90-Day Plan",
				Goal:     "Focused operating plan.",
				Output:   "North Star, 3 monthly milestones, 3 weekly habits.",
				Criteria: "North Star is leading indicator.",
				Intro:    "90-day system:\n1. North Star (predicts revenue)\n2. Month 1/2/3 milestones\n3. 3 weekly habits",
				Eval:     "Concrete, measurable.",
			},
			{
				ID: "6.4", Title: "60-Second Story",
				Goal:     "Founder journey under 60 seconds.",
				Output:   "Problem, evidence, built, traction, retention, vision.",
				Criteria: "All 6. Human. Real numbers.",
				Intro:    "60-second story: problem, evidence, built, traction, retention, vision.\n\nLike telling a friend.",
				Eval:     "All 6, concise.",
			},
			{
				ID: "6.5", Title: "Final Deliverable",
				Goal:     "Complete founder snapshot.",
				Output:   "Unit economics, channel, 90-day plan, story, lesson, Monday action.",
				Criteria: "All 6 reflect real work.",
				Intro:    "Graduation:\n1. Unit Economics\n2. #1 Channel + plan\n3. 90-Day Plan\n4. 60-Second Story\n5. Biggest Lesson\n6. Monday Morning Action",
				Eval:     "All 6. Celebrate.",
			},
		},
	},
}

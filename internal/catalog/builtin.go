package catalog

import "portfolio/internal/carousel"

// Default returns the built-in portfolio: five projects followed by the
// contact card. The slice is fresh on every call.
func Default() []carousel.Item {
	return []carousel.Item{
		{
			ID:          "portuguese-verbs",
			Kind:        carousel.KindProject,
			Title:       "Portuguese Verb Conjugator",
			ClientType:  "Personal Project",
			Description: "AI-powered Portuguese language learning tool with real-time verb conjugation, pronunciation guides, and interactive exercises. Built with OpenAI API for natural language processing.",
			TechStack:   []string{"Next.js", "TypeScript", "OpenAI", "Tailwind", "Vercel"},
			ProjectURL:  "https://github.com/jarrodmedrano/portuguese-verbs",
			CodeURL:     "https://github.com/jarrodmedrano/portuguese-verbs",
			ImageURL:    "https://placehold.co/800x450/000000/FFFFFF/png?text=Portuguese+Verbs",
		},
		{
			ID:          "jarrod-starter",
			Kind:        carousel.KindProject,
			Title:       "Full-Stack Starter Template",
			ClientType:  "Open Source",
			Description: "Production-ready Next.js starter with authentication, database, testing, and deployment configurations. Used by 500+ developers to launch MVPs faster.",
			TechStack:   []string{"Next.js", "Prisma", "PostgreSQL", "NextAuth", "Vitest"},
			ProjectURL:  "https://github.com/jarrodmedrano/jarrod-starter",
			CodeURL:     "https://github.com/jarrodmedrano/jarrod-starter",
			ImageURL:    "https://placehold.co/800x450/000000/FFFFFF/png?text=Jarrod+Starter",
		},
		{
			ID:          "story-bible",
			Kind:        carousel.KindProject,
			Title:       "Story Bible App",
			ClientType:  "Client Project",
			Description: "Collaborative writing tool for screenwriters and novelists. Features character tracking, timeline management, and AI-powered plot suggestions.",
			TechStack:   []string{"React", "Node.js", "MongoDB", "Express", "AWS"},
			ProjectURL:  "https://story-bible.com",
			ImageURL:    "https://placehold.co/800x450/000000/FFFFFF/png?text=Story+Bible",
		},
		{
			ID:          "binary-quiz",
			Kind:        carousel.KindProject,
			Title:       "Binary Quiz Game",
			ClientType:  "Educational",
			Description: "Interactive learning platform teaching binary, hexadecimal, and other number systems through gamified quizzes. Tracks progress and awards achievements.",
			TechStack:   []string{"Next.js", "TypeScript", "Tailwind", "Supabase"},
			ProjectURL:  "https://jarrodmedrano.github.io/binary-quiz/",
			CodeURL:     "https://github.com/jarrodmedrano/binary-quiz",
			ImageURL:    "https://placehold.co/800x450/000000/FFFFFF/png?text=Binary+Quiz",
		},
		{
			ID:          "guitar-fretboard",
			Kind:        carousel.KindProject,
			Title:       "Guitar Fretboard",
			ClientType:  "Personal Project",
			Description: "Interactive guitar fretboard visualization tool for learning scales, chords, and intervals. Features customizable tunings and theory reference.",
			TechStack:   []string{"React", "Next.js", "Tailwind", "Framer Motion"},
			ProjectURL:  "https://guitar-fretboard-six.vercel.app/",
			CodeURL:     "https://github.com/jarrodmedrano/guitar-fretboard",
			ImageURL:    "https://placehold.co/800x450/000000/FFFFFF/png?text=Guitar+Fretboard",
		},
		carousel.CallToAction("contact", "Have a project in mind?", "Let's talk", "#contact"),
	}
}

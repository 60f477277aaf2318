package lesson

// Seed returns the initial catalog loaded into an empty store at startup.
func Seed() []Lesson {
	return []Lesson{
		{ID: "1", Subject: "Mathematics", Location: "Hendon Campus", Price: 100, Spaces: 5},
		{ID: "2", Subject: "Art Class", Location: "Camden Studio", Price: 80, Spaces: 5},
		{ID: "3", Subject: "History", Location: "Brent Cross", Price: 90, Spaces: 5},
		{ID: "4", Subject: "Science", Location: "Hendon Campus", Price: 110, Spaces: 5},
		{ID: "5", Subject: "F-Student Engineering", Location: "Milton Keynes Hub", Price: 250, Spaces: 5},
		{ID: "6", Subject: "Romanian Language", Location: "Bucharest Online", Price: 75, Spaces: 5},
		{ID: "7", Subject: "Physics", Location: "Golders Green", Price: 100, Spaces: 5},
		{ID: "8", Subject: "Chemistry", Location: "Camden Studio", Price: 95, Spaces: 5},
		{ID: "9", Subject: "Coding (Python)", Location: "Hendon Campus", Price: 130, Spaces: 5},
		{ID: "10", Subject: "Race Data Analysis", Location: "Milton Keynes Hub", Price: 300, Spaces: 5},
		{ID: "11", Subject: "Music Theory", Location: "Brent Cross", Price: 85, Spaces: 5},
	}
}

// Package catalog holds the fixed option lists the wizard flows collect
// against: work interests, availability grid, transport modes, hobbies,
// quick facts, personality prompts, skills, industries and size brackets.
// They are plain keyed dispatch tables; icon and emoji values are the keys
// the client maps to its own assets.
package catalog

// Option is one selectable entry with display metadata.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
	Emoji string `json:"emoji,omitempty"`
}

// Selection caps enforced by the wizard toggle handlers.
const (
	MaxPhotos          = 5
	MaxInterests       = 3
	MaxHobbies         = 10
	MaxQuickFacts      = 10
	MinQuickFacts      = 3
	PromptSlots        = 3
	MaxWorkplacePhotos = 6
)

// WorkInterests are the casual work areas offered in the personal flow.
var WorkInterests = []Option{
	{ID: "hospitality", Label: "Hospitality", Icon: "coffee"},
	{ID: "retail", Label: "Retail", Icon: "shopping-bag"},
	{ID: "food", Label: "Food Service", Icon: "utensils"},
	{ID: "delivery", Label: "Delivery", Icon: "package"},
	{ID: "events", Label: "Events", Icon: "users"},
	{ID: "driver", Label: "Driver", Icon: "car"},
	{ID: "household", Label: "Household", Icon: "home"},
	{ID: "other", Label: "Other", Icon: "sparkles"},
}

// DaysOfWeek and TimeSlots span the 7x3 availability grid. A selected cell
// is stored as the key "{day}-{slot}", e.g. "Mon-AM".
var (
	DaysOfWeek = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	TimeSlots  = []string{"AM", "PM", "EVE"}
)

// TransportModes are the single-select commute options.
var TransportModes = []Option{
	{ID: "car", Label: "Car", Icon: "car"},
	{ID: "bus", Label: "Bus", Icon: "bus"},
	{ID: "bike", Label: "Bike", Icon: "bike"},
	{ID: "train", Label: "Train", Icon: "train"},
	{ID: "walk", Label: "Walk", Icon: "circle-dot"},
	{ID: "mix", Label: "Mix of All", Icon: "globe"},
}

// Hobbies are the general-interest tags (up to MaxHobbies).
var Hobbies = []string{
	"Surfing", "Beach Volleyball", "Gym", "Running", "Hiking", "Gaming",
	"Photography", "Coffee", "Hospitality", "Music Production", "Content Creation",
	"Fashion", "Design", "Cars", "Sustainability", "Cooking", "Travel",
	"Festivals", "Reading", "Yoga", "Art", "Tech", "Fitness", "Nature",
}

// QuickFacts are the personality tags (MinQuickFacts..MaxQuickFacts).
var QuickFacts = []Option{
	{ID: "early-bird", Label: "Early Bird", Emoji: "🌅"},
	{ID: "night-owl", Label: "Night Owl", Emoji: "🌙"},
	{ID: "team-player", Label: "Team Player", Emoji: "🤝"},
	{ID: "solo-worker", Label: "Solo Worker", Emoji: "💼"},
	{ID: "coffee-lover", Label: "Coffee Lover", Emoji: "☕"},
	{ID: "tea-person", Label: "Tea Person", Emoji: "🍵"},
	{ID: "dog-person", Label: "Dog Person", Emoji: "🐕"},
	{ID: "cat-person", Label: "Cat Person", Emoji: "🐈"},
	{ID: "beach-lover", Label: "Beach Lover", Emoji: "🏖️"},
	{ID: "city-person", Label: "City Person", Emoji: "🏙️"},
	{ID: "music-always", Label: "Music Always", Emoji: "🎵"},
	{ID: "quiet-worker", Label: "Quiet Worker", Emoji: "🤫"},
	{ID: "social-butterfly", Label: "Social Butterfly", Emoji: "🦋"},
	{ID: "detail-oriented", Label: "Detail Oriented", Emoji: "🔍"},
	{ID: "big-picture", Label: "Big Picture", Emoji: "🖼️"},
	{ID: "creative-mind", Label: "Creative Mind", Emoji: "🎨"},
}

// PromptCategories groups the personality prompts shown in the prompt step.
// A prompt may be used in at most one of the three answer slots.
var PromptCategories = map[string][]string{
	"Daily Life & Preferences": {
		"My go-to comfort snack is...",
		"The app I open first every morning is...",
		"If you looked at my screen time, you'd see way too much of...",
		"My current binge-watch obsession is...",
		"The last thing that made me laugh way too hard was...",
	},
	"Social & Culture": {
		"My friends always call me the one who...",
		"The best concert or event I've been to is...",
		"My ideal weekend on the Gold Coast looks like...",
		"A movie I'll never get tired of watching is...",
		"My playlist would not be complete without...",
	},
	"Fun & Random": {
		"A random fact I love sharing is...",
		"My most used emoji is...",
		"The weirdest food combo I actually enjoy is...",
		"If I could teleport right now, I'd go to...",
		"My guilty pleasure show, song, or trend is...",
	},
	"Interests & Hobbies": {
		"A hobby I could talk about for hours is...",
		"Something I've recently gotten into is...",
		"My favorite way to stay active is...",
		"If I could instantly get good at one thing, it would be...",
		"The game I always win (or always lose) is...",
	},
	"Personality & Vibes": {
		"My friends know me for always...",
		"A little thing that instantly makes me happy is...",
		"I'd describe myself in three emojis...",
		"The best compliment I've ever gotten is...",
		"Something I do that always makes people smile is...",
	},
	"Aspirations & Self": {
		"A skill I want to learn just for fun is...",
		"My dream travel destination is...",
		"The best advice I've ever gotten is...",
		"The last time I tried something new was when...",
		"One thing I'm passionate about outside of study or work is...",
	},
}

// AllPrompts flattens the prompt catalog.
func AllPrompts() []string {
	var all []string
	for _, category := range promptCategoryOrder {
		all = append(all, PromptCategories[category]...)
	}
	return all
}

var promptCategoryOrder = []string{
	"Daily Life & Preferences",
	"Social & Culture",
	"Fun & Random",
	"Interests & Hobbies",
	"Personality & Vibes",
	"Aspirations & Self",
}

// IsKnownPrompt checks prompt membership in the catalog.
func IsKnownPrompt(prompt string) bool {
	for _, prompts := range PromptCategories {
		for _, p := range prompts {
			if p == prompt {
				return true
			}
		}
	}
	return false
}

// SoftSkills and TechnicalSkills are the suggested skill chips. Users may
// also add arbitrary custom skills; those are stored uncategorized and fall
// into the soft bucket at render time, matching CategorizeSkills.
var SoftSkills = []string{
	"Communication", "Teamwork", "Problem Solving", "Time Management", "Customer Service",
	"Leadership", "Adaptability", "Work Ethic", "Attention to Detail", "Flexibility",
	"Interpersonal Skills", "Conflict Resolution", "Active Listening", "Patience",
	"Reliability", "Multitasking", "Positive Attitude", "Quick Learning",
}

var TechnicalSkills = []string{
	"Cash Handling", "Food Safety", "Barista Skills", "POS Systems", "Inventory Management",
	"Food Preparation", "Cleaning & Sanitation", "Heavy Lifting", "Driving License",
	"First Aid Certified", "Forklift Operation", "Basic Computer Skills",
	"Microsoft Office", "Social Media", "Data Entry", "JavaScript", "Python", "Excel",
}

// CategorizeSkills splits a stored skill list into soft and technical groups
// by catalog lookup. Category is not stored per entry; skills absent from
// both catalogs (user-added customs) are treated as soft.
func CategorizeSkills(skills []string) (soft, technical []string) {
	for _, s := range skills {
		if contains(TechnicalSkills, s) {
			technical = append(technical, s)
		} else {
			soft = append(soft, s)
		}
	}
	return soft, technical
}

// Industries and CompanySizes are the company-flow select catalogs.
var Industries = []string{
	"Technology", "Healthcare", "Finance", "Retail", "Education", "Manufacturing",
	"Hospitality", "Real Estate", "Marketing", "Consulting", "Non-profit", "Other",
}

var CompanySizes = []string{
	"1-10 employees",
	"11-50 employees",
	"51-200 employees",
	"201-500 employees",
	"501-1000 employees",
	"1000+ employees",
}

// IsWorkInterest reports membership in the work-interest catalog.
func IsWorkInterest(id string) bool { return hasOption(WorkInterests, id) }

// IsTransportMode reports membership in the transport catalog.
func IsTransportMode(id string) bool { return hasOption(TransportModes, id) }

// IsQuickFact reports membership in the quick-fact catalog.
func IsQuickFact(id string) bool { return hasOption(QuickFacts, id) }

// IsHobby reports membership in the hobby catalog.
func IsHobby(name string) bool { return contains(Hobbies, name) }

// IsIndustry reports membership in the industry catalog.
func IsIndustry(name string) bool { return contains(Industries, name) }

// IsCompanySize reports membership in the size-bracket catalog.
func IsCompanySize(name string) bool { return contains(CompanySizes, name) }

// IsDay reports membership in the availability day axis.
func IsDay(day string) bool { return contains(DaysOfWeek, day) }

// IsTimeSlot reports membership in the availability slot axis.
func IsTimeSlot(slot string) bool { return contains(TimeSlots, slot) }

func hasOption(opts []Option, id string) bool {
	for _, o := range opts {
		if o.ID == id {
			return true
		}
	}
	return false
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

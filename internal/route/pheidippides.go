package route

// pheidippidesStops is the Athens round trip, in miles from the Acropolis.
var pheidippidesStops = []Waypoint{
	{0, "Acropolis", "“Welcome to leg-day on hard mode!” Athena’s owl just took one look at your ruck and muttered, “Hoot luck, buddy.”"},
	{12, "Eleusis", "Demeter waves a loaf of ancient sourdough, promising carbs, then remembers you’re low-carb and turns it into a kettlebell instead."},
	{26, "Megara", "Heracles appears, flexes, and asks if you’d mind carrying his lion skin too. You politely decline and blame “strict baggage rules.”"},
	{48, "Corinth", "Pegasus gallops past bragging about “flying the whole route.” You remind him wings are basically the original cheating hoverboard."},
	{75, "Nemea", "Locals offer you a selfie with the retired Nemean Lion. He is chill now, but still judges your form if you slack on posture."},
	{99, "Tegea", "Atalanta tries to bait you with golden apples, but you’re too tired to bend down. Core engagement never felt so petty."},
	{153, "Sparta", "A Spartan mom hands you a snack and says, “Come back with your ruck… or get roasted in the group chat.” Motivation achieved."},
	{206, "Mantinea", "Artemis fires a warning arrow over your head. Apparently your shuffle pace is scaring the wildlife. Even the turtles."},
	{224, "Argos", "Hera’s multi-eyed security cam spots you sidestepping a pothole and logs it as “cowardice.” You power-skip to clear your reputation."},
	{249, "Epidaurus", "Asclepius offers a magic salve for sore traps, but only if you pronounce “Asclepius” correctly on the first try. You limp away unhealed."},
	{286, "Sounion", "Poseidon hurls sea spray in your face and shouts, “Try rucking underwater next time!” You start a petition for floaty dumbbells."},
	{306, "Athens Return", "Nike swoops in with a laurel crown and whispers, “Congrats, now drop the pack before gravity charges late fees.”"},
}

// defaultRoute is built once at init; a broken table is a programming error.
var defaultRoute *Route

func init() {
	r, err := New("Pheidippides", pheidippidesStops)
	if err != nil {
		panic(err)
	}
	defaultRoute = r
}

// Default returns the Pheidippides round-trip route.
func Default() *Route {
	return defaultRoute
}

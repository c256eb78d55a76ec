package catalog

// seedTracks are the hard-style kettlebell cycles, 2 weeks / 6 sessions each.
var seedTracks = []Track{
	{
		ID:   "hermes-power-forge",
		Name: "Hermes' Power Forge",
		Sessions: []Session{
			{ // Wk-1 D-1 lower push
				Main: "Double-KB Front Squat 5×5 @ RPE 7",
				Accessory: []string{
					"Bulgarian Split Squat 3×8 /leg",
					"TRX Row 3×10",
					"20-lb-vest Glute-Bridge March 3×40 s",
				},
				Finisher: "30 s Goblet-Squat Pulse / 30 s rest ×4",
			},
			{ // Wk-1 D-2 upper
				Main: "Single-Arm Clean + Press 5×5 /side",
				Accessory: []string{
					"Single-KB Floor Press 3×10 /side",
					"Bent-Over Row 3×8 /side",
					"TRX Face-Pull + Y-Raise superset 3×12 each",
				},
				Finisher: "KB Hollow-Body OH Hold 20 s on /10 s off ×4",
			},
			{ // Wk-1 D-3 lower hinge
				Main: "Double-KB Deadlift 6×6 @ RPE 7",
				Accessory: []string{
					"Alternating KB Swing EMOM 8 (12 reps)",
					"TRX Hamstring Curl 3×15",
					"Suitcase Carry 4×20 m /side",
				},
				Finisher: "20-lb-vest Step-Ups 30 s /15 s ×5",
			},
			{ // Wk-2 D-1
				Main: "Double-KB Front Squat 6×4 (↑ load)",
				Accessory: []string{
					"Goblet Box-Squat Pulse 3×12",
					"TRX Single-Leg Hip Thrust 3×10 /leg",
					"Front-Rack Squat-Hold 3×30 s",
				},
				Finisher: "Tabata Alternating Swings (4 min)",
			},
			{ // Wk-2 D-2
				Main: "Clean + Push-Press Ladder (1-2-3-2-1) ×3",
				Accessory: []string{
					"Renegade Row 3×8 /side",
					"TRX Atomic Push-Up 3×10",
					"KB Windmill 3×6 /side",
				},
				Finisher: "Farmer-Carry March 45 s /15 s ×4",
			},
			{ // Wk-2 D-3
				Main: "Tempo KB RDL (3-s eccentric) 4×8",
				Accessory: []string{
					"High Pull EMOM 10 (6 /side)",
					"Weighted Step-Up 3×12 /leg",
					"Plank Pull-Through 3×30 s",
				},
				Finisher: "Swing-Sprint: 10 Swings + 50 m run ×5",
			},
		},
	},
	{
		ID:   "artemis-rites",
		Name: "Artemis Rites",
		Sessions: []Session{
			{
				Main: "Double-KB Front-Rack Reverse Lunge 5×5 /leg",
				Accessory: []string{
					"KB Swing 3×15",
					"TRX Hamstring Curl 3×12",
					"20-lb-vest Glute-Bridge March 3×40 s",
				},
				Finisher: "Goblet-Squat Iso-Pulse 30 s / 15 s rest ×4",
			},
			{
				Main: "Single-KB Floor-Press Cluster (2-2-2, 10 s intra-rest) ×4 /side",
				Accessory: []string{
					"Single-Arm Bent Row 3×10 /side",
					"TRX Face-Pull 3×15",
				},
				Finisher: "Plank Pull-Through 20 s on / 10 s off ×6",
			},
			{
				Main: "Double-KB Sumo Deadlift 6×6 (3-s eccentric)",
				Accessory: []string{
					"Jumping Goblet Squat 3×12",
					"Suitcase Carry 3×20 m /side",
					"TRX Pistol-Assist 3×6 /leg",
				},
				Finisher: "Tabata Alternating Swings 4 min",
			},
			{
				Main: "Double-KB Clean + Front-Squat Ladder 1-2-3-4-3-2-1",
				Accessory: []string{
					"Walking Lunges (racked) 3×12 /leg",
					"TRX Single-Leg Hip Thrust 3×10 /leg",
					"KB Swing 3×20",
				},
				Finisher: "20-lb-vest Step-Up Sprint 30 s on / 15 s off ×5",
			},
			{
				Main: "Half-Kneeling Push-Press 5×6 /side",
				Accessory: []string{
					"EMOM 10, odd minutes: 8 Renegade Rows /side",
					"EMOM 10, even minutes: 6 TRX Atomic Push-Ups",
				},
				Finisher: "Farmer-Carry March 45 s / 15 s ×4",
			},
			{
				Main: "KB Bulgarian Single-Leg RDL 4×8 /leg",
				Accessory: []string{
					"High Pull 3×10 /side",
					"Weighted Step-Up 3×12 /leg",
					"Plank Reach-Out 3×15 /side",
				},
				Finisher: "Swing-Sprint: 10 Swings + 50 m dash ×5",
			},
		},
	},
}

var defaultCatalog *Catalog

func init() {
	c, err := New(seedTracks)
	if err != nil {
		panic(err)
	}
	defaultCatalog = c
}

// Default returns the built-in training catalog.
func Default() *Catalog {
	return defaultCatalog
}

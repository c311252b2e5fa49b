package schedule

// WorkoutPlans holds the strength plan for each rotation day.
var WorkoutPlans = []WorkoutPlan{
	{
		ID:          GymDayPush,
		Name:        "Push Day Strength Plan",
		Description: "Focuses on chest, shoulders, and triceps with EMG-validated exercises.",
		Phases:      []WorkoutPhase{
			{
				Name:      "Push-Day Dynamic Warm-Up (10 min)",
				Exercises: []DetailedExercise{
					{ID: "push_warmup_band_pull_apart", Name: "Band-Resisted Scapular Pull-Apart", Type: ExerciseWarmupActivation, SetsReps: "2 × 15", Equipment: "Resistance Band", WhyAndCitation: "Pre-activates upper back & scapular stabilizers."},
					{ID: "push_warmup_pvc_passthroughs", Name: "PVC Pass-Throughs", Type: ExerciseWarmupDynamicStretch, SetsReps: "2 × 10", Equipment: "PVC Pipe or Band", WhyAndCitation: "Opens chest/shoulders, primes range of motion."},
					{ID: "push_warmup_jump_rope", Name: "Jump Rope", Type: ExerciseWarmupCardio, SetsReps: "2 min", Equipment: "Jump Rope", WhyAndCitation: "Elevates HR, engages calves & shoulders."},
					{ID: "push_warmup_worlds_greatest", Name: "World’s Greatest Stretch", Type: ExerciseWarmupMobility, SetsReps: "5 reps/side", Equipment: "Bodyweight", WhyAndCitation: "Full-body mobility with chest/hip opening."},
					{ID: "push_warmup_scapular_pushups", Name: "Scapular Push-Ups", Type: ExerciseWarmupActivation, SetsReps: "10 slow reps", Equipment: "Bodyweight", WhyAndCitation: "Activates serratus anterior & warms shoulder girdle."},
				},
			},
			{
				Name:      "Chest (5 Exercises)",
				Exercises: []DetailedExercise{
					{ID: "push_chest_incline_db_press", Name: "Incline Dumbbell Press @ 30°", Type: ExerciseMainCompound, Segment: "Upper Chest", SetsReps: "3 × 8–12", Equipment: "Bench + dumbbells", MuscleGroup: "Chest", WhyAndCitation: "30° incline maximizes clavicular-pec activation."},
					{ID: "push_chest_flat_db_press", Name: "Flat Dumbbell Bench Press", Type: ExerciseMainCompound, Segment: "Middle Chest", SetsReps: "3 × 8–12", Equipment: "Flat bench + dumbbells", MuscleGroup: "Chest", WhyAndCitation: "Comparable to barbell for mid-chest EMG."},
					{ID: "push_chest_decline_db_press", Name: "Decline Dumbbell Press", Type: ExerciseMainCompound, Segment: "Lower Chest", SetsReps: "3 × 8–12", Equipment: "Decline bench + dumbbells", MuscleGroup: "Chest", WhyAndCitation: "Decline press elicits 93% lower-pec EMG."},
					{ID: "push_chest_machine_press", Name: "Chest Press Machine", Type: ExerciseMainCompound, Segment: "All-Around Chest", SetsReps: "3 × 10–15", Equipment: "Machine", MuscleGroup: "Chest", WhyAndCitation: "Constant tension for full-PEC engagement."},
					{ID: "push_chest_pec_deck_fly", Name: "Pec-Deck Fly (or Cable Fly @ mid-height)", Type: ExerciseFinisher, Segment: "Chest Finisher", SetsReps: "3 × 12–15", Equipment: "Machine or cables", MuscleGroup: "Chest", WhyAndCitation: "Peak inner-chest peak contraction and striation."},
				},
			},
			{
				Name:      "Shoulders (5 Exercises)",
				Exercises: []DetailedExercise{
					{ID: "push_shoulder_seated_db_press", Name: "Seated Dumbbell Shoulder Press", Type: ExerciseMainCompound, Segment: "Anterior Delt", SetsReps: "3 × 8–12", Equipment: "Upright bench + dumbbells", MuscleGroup: "Shoulders", WhyAndCitation: "~11% greater anterior-delt EMG vs. barbell/standing."},
					{ID: "push_shoulder_lateral_raise", Name: "Dumbbell Lateral Raise", Type: ExerciseMainIsolation, Segment: "Medial Delt", SetsReps: "3 × 12–15", Equipment: "Dumbbells", MuscleGroup: "Shoulders", WhyAndCitation: "Highest medial-delt activation (~30% MVIC)."},
					{ID: "push_shoulder_rear_lateral_raise", Name: "Seated Rear Lateral Raise (DB)", Type: ExerciseMainIsolation, Segment: "Posterior Delt", SetsReps: "3 × 12–15", Equipment: "Incline bench + dumbbells", MuscleGroup: "Shoulders", WhyAndCitation: "Top posterior-delt EMG in EMG studies."},
					{ID: "push_shoulder_arnold_press", Name: "Arnold Press", Type: ExerciseMainCompound, Segment: "All-Around Shoulder", SetsReps: "3 × 8–10", Equipment: "Dumbbells", MuscleGroup: "Shoulders", WhyAndCitation: "Compound multi-head stimulus, blends press and rotation for full-deltoid engagement."},
					{ID: "push_shoulder_face_pull", Name: "Cable Face-Pull", Type: ExerciseFinisher, Segment: "Shoulder Finisher", SetsReps: "2 × 15", Equipment: "Cable machine + rope", MuscleGroup: "Shoulders", WhyAndCitation: "High rear-delt/end-range shoulder health and postural benefit."},
				},
			},
			{
				Name:      "Triceps (5 Exercises)",
				Exercises: []DetailedExercise{
					{ID: "push_triceps_overhead_ext", Name: "Overhead Cable Triceps Extension (rope, elbows in)", Type: ExerciseMainIsolation, Segment: "Long Head Triceps", SetsReps: "3 × 10–12", Equipment: "Cable machine + rope", MuscleGroup: "Triceps", WhyAndCitation: "Overhead stretch maximizes long-head EMG."},
					{ID: "push_triceps_pronated_pushdown", Name: "Pronated-Bar Cable Pushdown", Type: ExerciseMainIsolation, Segment: "Lateral Head Triceps", SetsReps: "3 × 12–15", Equipment: "Cable + straight bar", MuscleGroup: "Triceps", WhyAndCitation: "Overhand pushdown yields highest lateral-head activation (general consensus)."},
					{ID: "push_triceps_rope_pushdown", Name: "Rope Triceps Pushdown", Type: ExerciseMainIsolation, Segment: "Medial Head Triceps", SetsReps: "3 × 12–15", Equipment: "Cable + rope", MuscleGroup: "Triceps", WhyAndCitation: "Rope split at bottom peaks medial-head EMG."},
					{ID: "push_triceps_weighted_dips", Name: "Weighted Dips", Type: ExerciseMainCompound, Segment: "All-Around Triceps", SetsReps: "3 × 8–10", Equipment: "Dip station + weight", MuscleGroup: "Triceps", WhyAndCitation: "Highest combined triceps EMG (85–90%)."},
					{ID: "push_triceps_diamond_pushup", Name: "Diamond Push-Up", Type: ExerciseFinisher, Segment: "Triceps Finisher", SetsReps: "2 × 15", Equipment: "Bodyweight", MuscleGroup: "Triceps", WhyAndCitation: "Peak contraction under body-weight load for full-head burnout."},
				},
			},
			{
				Name:      "Push-Day Cool-Down & Stretch (7 min)",
				Exercises: []DetailedExercise{
					{ID: "push_cooldown_doorway_pec", Name: "Doorway Pec Stretch", Type: ExerciseCooldownStretch, SetsReps: "30 sec each side", Equipment: "Doorway"},
					{ID: "push_cooldown_overhead_triceps_lat", Name: "Overhead Triceps & Lat Stretch", Type: ExerciseCooldownStretch, SetsReps: "30 sec each arm", Equipment: "Bodyweight"},
					{ID: "push_cooldown_cross_body_shoulder", Name: "Cross-Body Shoulder Stretch", Type: ExerciseCooldownStretch, SetsReps: "30 sec each arm", Equipment: "Bodyweight"},
					{ID: "push_cooldown_childs_pose_lat_reach", Name: "Child’s Pose with Lat Reach", Type: ExerciseCooldownStretch, SetsReps: "5 reps per side", Equipment: "Bodyweight"},
					{ID: "push_cooldown_foam_roll_triceps_lats", Name: "Foam-Roll Triceps & Lats", Type: ExerciseCooldownFoamRoll, SetsReps: "1 min total", Equipment: "Foam Roller"},
					{ID: "push_cooldown_breathing", Name: "Deep Diaphragmatic Breathing", Type: ExerciseCooldownBreathing, SetsReps: "1 min", Equipment: "Bodyweight"},
				},
			},
		},
	},
	{
		ID:          GymDayPull,
		Name:        "Pull Day Strength Plan",
		Description: "Focuses on back and biceps with EMG-validated exercises.",
		Phases:      []WorkoutPhase{
			{
				Name:      "Pull-Day Dynamic Warm-Up (10 min)",
				Exercises: []DetailedExercise{
					{ID: "pull_warmup_band_pull_apart", Name: "Band-Resisted Pull-Apart", Type: ExerciseWarmupActivation, SetsReps: "2 × 15", Equipment: "Resistance Band"},
					{ID: "pull_warmup_pvc_passthroughs", Name: "PVC Pass-Throughs", Type: ExerciseWarmupDynamicStretch, SetsReps: "2 × 10", Equipment: "PVC Pipe or Band"},
					{ID: "pull_warmup_jump_rope", Name: "Jump Rope", Type: ExerciseWarmupCardio, SetsReps: "2 min", Equipment: "Jump Rope"},
					{ID: "pull_warmup_scapular_pullups", Name: "Scapular Pull-Ups (or Scapular Retractions on Low Cable)", Type: ExerciseWarmupActivation, SetsReps: "2 × 10", Equipment: "Pull-up bar or Cable Machine"},
					{ID: "pull_warmup_cat_cow", Name: "Cat–Cow Mobilization", Type: ExerciseWarmupMobility, SetsReps: "5 reps", Equipment: "Bodyweight"},
				},
			},
			{
				Name:      "Back (5 Exercises)",
				Exercises: []DetailedExercise{
					{ID: "pull_back_lat_pulldown", Name: "Wide-Grip Lat Pulldown", Type: ExerciseMainCompound, Segment: "Lats Width", SetsReps: "3 × 8–12", Equipment: "Cable machine + bar", MuscleGroup: "Back", WhyAndCitation: "Elicits ~86% MVIC in latissimus dorsi - top for width development."},
					{ID: "pull_back_one_arm_db_row", Name: "One-Arm Dumbbell Row", Type: ExerciseMainCompound, Segment: "Back Thickness", SetsReps: "3 × 8–12 each", Equipment: "Dumbbell + bench", MuscleGroup: "Back", WhyAndCitation: "One-arm row hits lats and rhomboids at ~91% MVIC - prime for mid-back thickness."},
					{ID: "pull_back_rdl", Name: "Romanian Deadlift", Type: ExerciseMainCompound, Segment: "Lower Back/Hams", SetsReps: "3 × 8–12", Equipment: "Dumbbells or Barbell", MuscleGroup: "Back", WhyAndCitation: "RD variation shows highest erector spinae excitation (longissimus) among deadlift types."},
					{ID: "pull_back_chin_up", Name: "Chin-Up (Underhand Grip)", Type: ExerciseMainCompound, Segment: "All-Around Back", SetsReps: "3 × to failure", Equipment: "Pull-up bar", MuscleGroup: "Back", WhyAndCitation: "BB and LD EMG > lat-pulldown; also recruits lower traps & erectors."},
					{ID: "pull_back_straight_arm_pulldown", Name: "Straight-Arm Cable Pulldown", Type: ExerciseFinisher, Segment: "Back Finisher", SetsReps: "2 × 15", Equipment: "Cable machine + bar", MuscleGroup: "Back", WhyAndCitation: "Isolation stretch of lats for peak contraction and definition."},
				},
			},
			{
				Name:      "Biceps (5 Exercises)",
				Exercises: []DetailedExercise{
					{ID: "pull_biceps_incline_db_curl", Name: "Incline Dumbbell Curl", Type: ExerciseMainIsolation, Segment: "Long Head Biceps", SetsReps: "3 × 10", Equipment: "Incline bench + dumbbells", MuscleGroup: "Biceps", WhyAndCitation: "IDC keeps long head under tension throughout ROM, high EMG vs. preacher & standard curls."},
					{ID: "pull_biceps_preacher_curl", Name: "Dumbbell Preacher Curl", Type: ExerciseMainIsolation, Segment: "Short Head Biceps", SetsReps: "3 × 10", Equipment: "Preacher bench + DB", MuscleGroup: "Biceps", WhyAndCitation: "Preacher curl (bar) showed ~90% BB EMG, emphasizing the short head at lock-out."},
					{ID: "pull_biceps_hammer_curl", Name: "Hammer Curl", Type: ExerciseMainIsolation, Segment: "Brachialis/Brachioradialis", SetsReps: "3 × 12", Equipment: "Dumbbells", MuscleGroup: "Biceps", WhyAndCitation: "Neutral grip drives brachialis & brachioradialis, adds thickness & lateral sweep."},
					{ID: "pull_biceps_standing_db_curl", Name: "Standing Dumbbell Curl", Type: ExerciseMainCompound, Segment: "All-Around Biceps", SetsReps: "3 × 8–12", Equipment: "Dumbbells", MuscleGroup: "Biceps", WhyAndCitation: "Standard curl evokes ~84% BB MVIC - excellent overall development."},
					{ID: "pull_biceps_cable_concentration_curl", Name: "Cable Concentration Curl", Type: ExerciseFinisher, Segment: "Biceps Finisher", SetsReps: "2 × 15 each", Equipment: "Cable machine + handle", MuscleGroup: "Biceps", WhyAndCitation: "Peak contraction & deep burn under constant tension."},
				},
			},
			{
				Name:      "Pull-Day Cool-Down & Stretch (7 min)",
				Exercises: []DetailedExercise{
					{ID: "pull_cooldown_childs_pose_lat_reach", Name: "Child’s Pose with Lat Reach", Type: ExerciseCooldownStretch, SetsReps: "5 reps per side", Equipment: "Bodyweight"},
					{ID: "pull_cooldown_static_lat_stretch", Name: "Static Lat Stretch on Bench/Wall", Type: ExerciseCooldownStretch, SetsReps: "30 sec each side", Equipment: "Bench or Wall"},
					{ID: "pull_cooldown_seated_hamstring", Name: "Seated Hamstring Stretch", Type: ExerciseCooldownStretch, SetsReps: "30 sec each leg", Equipment: "Bodyweight"},
					{ID: "pull_cooldown_cross_body_biceps_wall", Name: "Cross-Body Biceps Wall Stretch", Type: ExerciseCooldownStretch, SetsReps: "30 sec each arm", Equipment: "Wall"},
					{ID: "pull_cooldown_foam_roll_lats_thoracic", Name: "Foam-Roll Lats & Thoracic Spine", Type: ExerciseCooldownFoamRoll, SetsReps: "1 min total", Equipment: "Foam Roller"},
					{ID: "pull_cooldown_breathing", Name: "Deep Diaphragmatic Breathing", Type: ExerciseCooldownBreathing, SetsReps: "1 min", Equipment: "Bodyweight"},
				},
			},
		},
	},
	{
		ID:          GymDayLegs,
		Name:        "Leg Day Strength Plan",
		Description: "Focuses on quads, hamstrings, and glutes with EMG-validated exercises.",
		Phases:      []WorkoutPhase{
			{
				Name:      "Leg-Day Dynamic Warm-Up (10 min)",
				Exercises: []DetailedExercise{
					{ID: "legs_warmup_foam_roll_quads_it", Name: "Foam-Roll: Quads & IT Bands", Type: ExerciseWarmupFoamRoll, SetsReps: "1 min each", Equipment: "Foam Roller"},
					{ID: "legs_warmup_leg_swings", Name: "Leg Swings (F/R & L/R)", Type: ExerciseWarmupDynamicStretch, SetsReps: "10 per direction", Equipment: "Bodyweight"},
					{ID: "legs_warmup_walking_lunges", Name: "Walking Lunges", Type: ExerciseWarmupActivation, SetsReps: "2 × 10 steps", Equipment: "Bodyweight"},
					{ID: "legs_warmup_squat_t_push", Name: "Bodyweight Squat → T-Push", Type: ExerciseWarmupMobility, SetsReps: "5 reps per side", Equipment: "Bodyweight"},
					{ID: "legs_warmup_jump_rope", Name: "Jump Rope", Type: ExerciseWarmupCardio, SetsReps: "1 min", Equipment: "Jump Rope"},
				},
			},
			{
				Name:      "Quadriceps (5 Exercises)",
				Exercises: []DetailedExercise{
					{ID: "legs_quads_sissy_squat", Name: "Sissy Squat", Type: ExerciseMainIsolation, Segment: "Vastus Medialis", SetsReps: "3 × 12", Equipment: "Bodyweight (hands support)", MuscleGroup: "Quads", WhyAndCitation: "Sissy squats produce ~20% greater VMO EMG vs. back squat."},
					{ID: "legs_quads_narrow_leg_press", Name: "Narrow-Stance Leg Press", Type: ExerciseMainCompound, Segment: "Vastus Lateralis", SetsReps: "3 × 10–12", Equipment: "Leg-press machine", MuscleGroup: "Quads", WhyAndCitation: "Narrow stance + high foot placement yields highest VL activation."},
					{ID: "legs_quads_bulgarian_split_squat", Name: "Bulgarian Split Squat", Type: ExerciseMainCompound, Segment: "Rectus Femoris", SetsReps: "3 × 8–10 ea.", Equipment: "Dumbbells + bench", MuscleGroup: "Quads", WhyAndCitation: "Rear foot elevated increases RF length tension, maximizing EMG."},
					{ID: "legs_quads_goblet_squat", Name: "Goblet Squat", Type: ExerciseMainCompound, Segment: "All-Around Quads", SetsReps: "3 × 10–12", Equipment: "Dumbbell", MuscleGroup: "Quads", WhyAndCitation: "Front-loaded squat hits all four quad heads under full ROM."},
					{ID: "legs_quads_jump_squat", Name: "Jump Squat", Type: ExerciseFinisher, Segment: "Quads Finisher", SetsReps: "2 × 15", Equipment: "Bodyweight", MuscleGroup: "Quads", WhyAndCitation: "Plyometric quad burst for power & extra caloric burn."},
				},
			},
			{
				Name:      "Posterior Chain (Hamstrings & Glutes) (5 Exercises)",
				Exercises: []DetailedExercise{
					{ID: "legs_post_rdl", Name: "Romanian Deadlift (Hams)", Type: ExerciseMainCompound, Segment: "Hamstrings (Long Head)", SetsReps: "3 × 8–10", Equipment: "Dumbbells or Barbell", MuscleGroup: "Hamstrings", WhyAndCitation: "RDL elicits highest long-head biceps femoris EMG in posterior chain lifts."},
					{ID: "legs_post_lying_leg_curl", Name: "Lying Leg Curl", Type: ExerciseMainIsolation, Segment: "Hamstrings (Short Head)", SetsReps: "3 × 12", Equipment: "Leg-curl machine", MuscleGroup: "Hamstrings", WhyAndCitation: "Prone leg curl strongly activates short head at lock-out."},
					{ID: "legs_post_hip_thrust", Name: "Dumbbell Hip Thrust", Type: ExerciseMainCompound, Segment: "Gluteus Maximus", SetsReps: "3 × 10–12", Equipment: "Dumbbell + bench", MuscleGroup: "Glutes", WhyAndCitation: "Hip thrusts activate glute max ~17% more than squat variations."},
					{ID: "legs_post_stiff_leg_dl", Name: "Dumbbell Deadlift (Stiff-Leg)", Type: ExerciseMainCompound, Segment: "All-Around Posterior", SetsReps: "3 × 8–10", Equipment: "Dumbbells", MuscleGroup: "Hamstrings", WhyAndCitation: "Engages entire posterior chain under load - balance of hams, glutes."},
					{ID: "legs_post_broad_jump", Name: "Broad Jump", Type: ExerciseFinisher, Segment: "Posterior Finisher", SetsReps: "2 × 10", Equipment: "Bodyweight", MuscleGroup: "Glutes", WhyAndCitation: "Horizontal plyo for ham/glute power and metabolic blast."},
				},
			},
			{
				Name:      "Leg-Day Cool-Down & Stretch (7 min)",
				Exercises: []DetailedExercise{
					{ID: "legs_cooldown_standing_quad_stretch", Name: "Standing Quad Stretch", Type: ExerciseCooldownStretch, SetsReps: "30 sec each leg", Equipment: "Bodyweight"},
					{ID: "legs_cooldown_seated_hamstring_stretch", Name: "Seated Hamstring Stretch", Type: ExerciseCooldownStretch, SetsReps: "30 sec each leg", Equipment: "Bodyweight"},
					{ID: "legs_cooldown_figure_4_glute", Name: "Figure-4 Glute Stretch", Type: ExerciseCooldownStretch, SetsReps: "30 sec each side", Equipment: "Bodyweight"},
					{ID: "legs_cooldown_calf_stretch_wall", Name: "Calf Stretch (Wall)", Type: ExerciseCooldownStretch, SetsReps: "30 sec each side", Equipment: "Wall"},
					{ID: "legs_cooldown_foam_roll_hams_glutes", Name: "Foam-Roll Hamstrings & Glutes", Type: ExerciseCooldownFoamRoll, SetsReps: "1 min total", Equipment: "Foam Roller"},
					{ID: "legs_cooldown_breathing", Name: "Deep Diaphragmatic Breathing", Type: ExerciseCooldownBreathing, SetsReps: "1 min", Equipment: "Bodyweight"},
				},
			},
		},
	},
}

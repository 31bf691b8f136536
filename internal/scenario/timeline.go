package scenario

func snap(loc, action string, met ...string) AgentSnapshot {
	if met == nil {
		met = []string{}
	}
	return AgentSnapshot{Location: loc, Action: action, Met: met}
}

func deadSnap(loc string) AgentSnapshot {
	return AgentSnapshot{Location: loc, Action: "DEAD", Met: []string{}, Dead: true}
}

var timeline = []StepSnapshot{
	{Step: 0, Agents: map[string]AgentSnapshot{
		"red":    snap("Cafeteria", "starts doing wiring task", "blue", "green", "yellow"),
		"blue":   snap("Cafeteria", "starts doing fuel task", "red", "green", "yellow"),
		"green":  snap("Cafeteria", "starts doing garbage disposal task", "red", "blue", "yellow"),
		"yellow": snap("Cafeteria", "pretends to do card swipe task", "red", "blue", "green"),
	}},
	{Step: 1, Agents: map[string]AgentSnapshot{
		"red":    snap("Cafeteria", "continues wiring task", "blue", "green", "yellow"),
		"blue":   snap("Cafeteria", "continues fuel task", "red", "green", "yellow"),
		"green":  snap("Cafeteria", "continues garbage disposal task", "red", "blue", "yellow"),
		"yellow": snap("Cafeteria", "fake struggling with card swipe", "red", "blue", "green"),
	}},
	{Step: 2, Agents: map[string]AgentSnapshot{
		"red":    snap("Cafeteria", "finishes wiring task", "blue", "green", "yellow"),
		"blue":   snap("Cafeteria", "finishes fuel task", "red", "green", "yellow"),
		"green":  snap("Cafeteria", "finishes garbage disposal task", "red", "blue", "yellow"),
		"yellow": snap("Cafeteria", "fake finishes card swipe", "red", "blue", "green"),
	}},
	{Step: 3, Agents: map[string]AgentSnapshot{
		"red":    snap("Hallway", "starts moving toward Electrical"),
		"blue":   snap("Hallway", "starts moving toward Navigation"),
		"green":  snap("Cafeteria", "remains in Cafeteria, starts second task", "yellow"),
		"yellow": snap("Cafeteria", "remains in Cafeteria with green", "green"),
	}},
	{Step: 4, Agents: map[string]AgentSnapshot{
		"red":    snap("Hallway", "walking toward Electrical"),
		"blue":   snap("Hallway", "walking toward Navigation"),
		"green":  snap("Cafeteria", "working on download task", "yellow"),
		"yellow": snap("Cafeteria", "pretends to do another cafeteria task", "green"),
	}},
	{Step: 5, Agents: map[string]AgentSnapshot{
		"red":    snap("Electrical", "enters Electrical room"),
		"blue":   snap("Navigation", "enters Navigation room"),
		"green":  snap("Cafeteria", "finishes download task", "yellow"),
		"yellow": snap("Cafeteria", "finishes fake cafeteria task", "green"),
	}},
	{Step: 6, Agents: map[string]AgentSnapshot{
		"red":    snap("Electrical", "starts electrical wiring task"),
		"blue":   snap("Navigation", "starts navigation calibration"),
		"green":  snap("Hallway", "starts moving toward Navigation"),
		"yellow": snap("Hallway", "starts moving toward Electrical"),
	}},
	{Step: 7, Agents: map[string]AgentSnapshot{
		"red":    snap("Electrical", "working on electrical wiring"),
		"blue":   snap("Navigation", "working on navigation calibration"),
		"green":  snap("Hallway", "walking toward Navigation", "yellow"),
		"yellow": snap("Hallway", "walking toward Electrical", "green"),
	}},
	{Step: 8, Agents: map[string]AgentSnapshot{
		"red":    snap("Electrical", "continues electrical wiring"),
		"blue":   snap("Navigation", "continues navigation calibration"),
		"green":  snap("Hallway", "reaches Navigation room entrance"),
		"yellow": snap("Hallway", "reaches Electrical room entrance"),
	}},
	{Step: 9, Agents: map[string]AgentSnapshot{
		"red":    snap("Electrical", "nearly finished electrical wiring", "yellow"),
		"blue":   snap("Navigation", "finishes navigation calibration", "green"),
		"green":  snap("Navigation", "enters Navigation room", "blue"),
		"yellow": snap("Electrical", "enters Electrical room", "red"),
	}},
	{Step: 10, Agents: map[string]AgentSnapshot{
		"red":    snap("Electrical", "finishes electrical wiring task", "yellow"),
		"blue":   snap("Navigation", "starts second navigation task", "green"),
		"green":  snap("Navigation", "starts navigation task", "blue"),
		"yellow": snap("Electrical", "pretends to start electrical task", "red"),
	}},
	{Step: 11, Agents: map[string]AgentSnapshot{
		"red":    snap("Electrical", "starts second electrical task", "yellow"),
		"blue":   snap("Navigation", "working on navigation task", "green"),
		"green":  snap("Navigation", "working on navigation task", "blue"),
		"yellow": snap("Electrical", "fake working on electrical task", "red"),
	}},
	{Step: 12, Agents: map[string]AgentSnapshot{
		"red":    snap("Electrical", "working on electrical task", "yellow"),
		"blue":   snap("Navigation", "finishes navigation task", "green"),
		"green":  snap("Navigation", "continues navigation task", "blue"),
		"yellow": snap("Electrical", "continues fake electrical work", "red"),
	}},
	{Step: 13, Agents: map[string]AgentSnapshot{
		"red":    snap("Electrical", "finishes electrical task, starts leaving", "yellow"),
		"blue":   snap("Navigation", "starts third navigation task", "green"),
		"green":  snap("Navigation", "finishes navigation task", "blue"),
		"yellow": snap("Electrical", "notices red leaving", "red"),
	}},
	{Step: 14, Agents: map[string]AgentSnapshot{
		"red":    snap("Hallway", "exits Electrical room"),
		"blue":   snap("Navigation", "working on navigation task", "green"),
		"green":  snap("Navigation", "starts second navigation task", "blue"),
		"yellow": snap("Electrical", "alone in Electrical, stops pretending"),
	}},
	{Step: 15, Agents: map[string]AgentSnapshot{
		"red":    snap("Hallway", "walking toward Cafeteria"),
		"blue":   snap("Navigation", "continues navigation task", "green"),
		"green":  snap("Navigation", "working on navigation task", "blue"),
		"yellow": snap("Hallway", "leaves Electrical, moves toward Navigation"),
	}},
	{Step: 16, Agents: map[string]AgentSnapshot{
		"red":    snap("Cafeteria", "reaches Cafeteria"),
		"blue":   snap("Navigation", "finishes navigation task", "green"),
		"green":  snap("Navigation", "continues navigation task", "blue"),
		"yellow": snap("Hallway", "walking toward Navigation"),
	}},
	{Step: 17, Agents: map[string]AgentSnapshot{
		"red":    snap("Cafeteria", "starts cafeteria task"),
		"blue":   snap("Hallway", "starts moving toward Cafeteria", "yellow"),
		"green":  snap("Navigation", "finishes navigation task, starts leaving"),
		"yellow": snap("Hallway", "walking toward Navigation, crosses paths with blue", "blue"),
	}},
	{Step: 18, Agents: map[string]AgentSnapshot{
		"red":    snap("Cafeteria", "working on cafeteria task"),
		"blue":   snap("Hallway", "continues toward Cafeteria"),
		"green":  snap("Hallway", "exits Navigation room, walking"),
		"yellow": snap("Navigation", "reaches Navigation room"),
	}},
	{Step: 19, Agents: map[string]AgentSnapshot{
		"red":    snap("Cafeteria", "continues cafeteria task", "blue"),
		"blue":   snap("Cafeteria", "enters Cafeteria", "red"),
		"green":  snap("Hallway", "walking toward Electrical"),
		"yellow": snap("Navigation", "enters Navigation room, pretends to do task"),
	}},
	{Step: 20, Agents: map[string]AgentSnapshot{
		"red":    snap("Cafeteria", "working on cafeteria task", "blue"),
		"blue":   snap("Cafeteria", "starts cafeteria task", "red"),
		"green":  snap("Hallway", "continues toward Electrical"),
		"yellow": snap("Hallway", "quickly leaves Navigation, follows green toward Electrical"),
	}},
	{Step: 21, Agents: map[string]AgentSnapshot{
		"red":    snap("Cafeteria", "continues cafeteria task", "blue"),
		"blue":   snap("Cafeteria", "working on cafeteria task", "red"),
		"green":  snap("Electrical", "enters Electrical room"),
		"yellow": snap("Hallway", "reaches Electrical room entrance"),
	}},
	{Step: 22, Agents: map[string]AgentSnapshot{
		"red":    snap("Cafeteria", "finishes cafeteria task", "blue"),
		"blue":   snap("Cafeteria", "continues cafeteria task", "red"),
		"green":  snap("Electrical", "starts electrical task", "yellow"),
		"yellow": snap("Electrical", "enters Electrical room", "green"),
	}},
	{Step: 23, Agents: map[string]AgentSnapshot{
		"red":    snap("Cafeteria", "starts second cafeteria task", "blue"),
		"blue":   snap("Cafeteria", "finishes cafeteria task", "red"),
		"green":  snap("Electrical", "working on electrical task", "yellow"),
		"yellow": snap("Electrical", "kills green", "green"),
	}},
	{Step: 24, Agents: map[string]AgentSnapshot{
		"red":    snap("Cafeteria", "working on cafeteria task", "blue"),
		"blue":   snap("Cafeteria", "starts second cafeteria task", "red"),
		"green":  deadSnap("Electrical"),
		"yellow": snap("Hallway", "quickly leaves Electrical"),
	}},
	{Step: 25, Agents: map[string]AgentSnapshot{
		"red":    snap("Cafeteria", "continues cafeteria task", "blue"),
		"blue":   snap("Cafeteria", "working on cafeteria task", "red"),
		"green":  deadSnap("Electrical"),
		"yellow": snap("Hallway", "walking quickly toward Cafeteria"),
	}},
	{Step: 26, Agents: map[string]AgentSnapshot{
		"red":    snap("Cafeteria", "finishes cafeteria task", "blue", "yellow"),
		"blue":   snap("Cafeteria", "continues cafeteria task", "red", "yellow"),
		"green":  deadSnap("Electrical"),
		"yellow": snap("Cafeteria", "enters Cafeteria, pretends to have been doing tasks", "red", "blue"),
	}},
	{Step: 27, Agents: map[string]AgentSnapshot{
		"red":    snap("Hallway", "starts moving toward Electrical"),
		"blue":   snap("Hallway", "finishes cafeteria task, starts moving toward Navigation"),
		"green":  deadSnap("Electrical"),
		"yellow": snap("Cafeteria", "remains in Cafeteria, does fake task to establish alibi"),
	}},
	{Step: 28, Agents: map[string]AgentSnapshot{
		"red":    snap("Hallway", "walking toward Electrical"),
		"blue":   snap("Hallway", "walking toward Navigation"),
		"green":  deadSnap("Electrical"),
		"yellow": snap("Hallway", "finishes fake cafeteria task, starts moving toward Navigation"),
	}},
	{Step: 29, Agents: map[string]AgentSnapshot{
		"red":    snap("Hallway", "reaches Electrical room entrance"),
		"blue":   snap("Navigation", "enters Navigation room"),
		"green":  deadSnap("Electrical"),
		"yellow": snap("Hallway", "walking toward Navigation"),
	}},
	{Step: 30, Agents: map[string]AgentSnapshot{
		"red":    snap("Electrical", "enters Electrical, discovers green's dead body, calls emergency meeting"),
		"blue":   snap("Cafeteria", "hears emergency meeting call, walks to meeting table"),
		"green":  deadSnap("Electrical"),
		"yellow": snap("Cafeteria", "hears emergency meeting call, walks to meeting table"),
	}},
}

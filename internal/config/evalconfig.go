package config

// evalConfiguration holds the evaluator's material and positional feature
// weights. Positional weights are applied after multiplying by the current
// search profile's FeatureScale; material is always applied unscaled.
type evalConfiguration struct {
	ManValue       int
	KingValue      int
	FirstKingBonus int

	CenterControl         int
	InnerCenterBonus       int
	AdvancementPerRow      int
	BackRowHold            int
	KingCentralization     int
	ManMobility            int
	KingMobility           int
	LeftRightImbalance     int
	LockedPositionPenalty  int
	RunawayManBonus        int
	TempoMainDiagonal      int
	EndgameKingAdvantage   int
	PieceStructureConnect  int
	EndgamePieceCountLimit int
	RunawayMaxDistance     int

	TerminalWin int
}

func init() {
	Settings.Eval.ManValue = 100
	Settings.Eval.KingValue = 300
	Settings.Eval.FirstKingBonus = 50

	Settings.Eval.CenterControl = 5
	Settings.Eval.InnerCenterBonus = 5
	Settings.Eval.AdvancementPerRow = 3
	Settings.Eval.BackRowHold = 8
	Settings.Eval.KingCentralization = 4
	Settings.Eval.ManMobility = 1
	Settings.Eval.KingMobility = 2
	Settings.Eval.LeftRightImbalance = -3
	Settings.Eval.LockedPositionPenalty = -10
	Settings.Eval.RunawayManBonus = 30
	Settings.Eval.TempoMainDiagonal = 2
	Settings.Eval.EndgameKingAdvantage = 20
	Settings.Eval.PieceStructureConnect = 4
	Settings.Eval.EndgamePieceCountLimit = 10
	Settings.Eval.RunawayMaxDistance = 4

	Settings.Eval.TerminalWin = 10_000
}

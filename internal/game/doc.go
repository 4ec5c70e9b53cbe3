// Package game implements the pot and side-pot engine for Texas Hold'em.
//
// The main type is PotManager, which tracks the pot chain of a single hand:
// a main pot followed by side pots created whenever a player is all-in for
// less than the current bet.
//
// # Basic Usage
//
// The table loop updates each Player and then tells the PotManager about
// the chips that moved:
//
//	pm := game.NewPotManager(10, 20)
//	pm.PostSmallBlind(sb, sb.PostBlind(10))
//	pm.PostBigBlind(bb, bb.PostBlind(20))
//	pm.AddRaise(utg, utg.Commit(200))
//	pm.AddCall(sb, sb.Commit(190))
//	pm.CloseRoundBetting()
//	// ... later streets ...
//	winners, err := pm.CalculateWinners(showdownPlayers)
//	for i := range winners {
//	    winners[i].PayWinners()
//	}
//
// # Caller Contract
//
// The PotManager trusts its caller. It does not check that a player has
// the chips they bet, that a folded player stays silent, or that a raise
// meets the minimum. BettingRound enforces those rules for the simulator;
// other callers can use CheckConservation as a debug assertion.
//
// A PotManager is created per hand, owned by one goroutine and discarded
// after payout.
package game

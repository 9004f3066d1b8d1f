package convert

import (
	"github.com/palemoky/four-landlord/internal/game/card"
	"github.com/palemoky/four-landlord/internal/game/engine"
	"github.com/palemoky/four-landlord/internal/game/rule"
	"github.com/palemoky/four-landlord/internal/protocol"
)

// Seats 座位信息
type Seats struct {
	Names [card.NumPlayers]string
	IsAI  [card.NumPlayers]bool
}

// Players 按座位生成玩家信息
func Players(s engine.State, seats Seats) []protocol.PlayerInfo {
	players := make([]protocol.PlayerInfo, card.NumPlayers)
	for i := range card.NumPlayers {
		players[i] = protocol.PlayerInfo{
			Seat:       i,
			Name:       seats.Names[i],
			IsAI:       seats.IsAI[i],
			IsLandlord: s.Landlord == i,
			CardsCount: len(s.Hands[i]),
		}
	}
	return players
}

// DealCards 生成 viewer 视角的手牌通知，地主确定前底牌不可见
func DealCards(tableID string, round int, s engine.State, viewer int, seats Seats) protocol.DealCardsPayload {
	payload := protocol.DealCardsPayload{
		TableID: tableID,
		Round:   round,
		Cards:   CardsToInfos(s.Hands[viewer]),
		Players: Players(s, seats),
	}
	if s.Landlord >= 0 {
		payload.BottomCards = CardsToInfos(s.Bottom)
	} else {
		payload.BottomCards = make([]protocol.CardInfo, len(s.Bottom))
	}
	return payload
}

// PlayTurn 生成轮到 seat 行动的通知
func PlayTurn(s engine.State, seat int) protocol.PlayTurnPayload {
	payload := protocol.PlayTurnPayload{
		Seat:  seat,
		Phase: s.Phase.String(),
	}
	if s.Phase != engine.PhasePlaying {
		return payload
	}

	leader := s.LastPlayer == -1 || s.LastPlayer == seat
	payload.MustPlay = leader
	if leader {
		payload.CanBeat = true
		return payload
	}
	last, err := rule.ParseHand(s.LastPlayed)
	if err != nil {
		return payload
	}
	payload.CanBeat = rule.FindSmallestBeatingCards(s.Hands[seat], last) != nil
	return payload
}

// GameOver 生成 viewer 视角的结束通知
func GameOver(s engine.State, viewer int, seats Seats) protocol.GameOverPayload {
	hands := make([]protocol.PlayerHand, card.NumPlayers)
	for i, hand := range s.Hands {
		hands[i] = protocol.PlayerHand{
			Seat:       i,
			PlayerName: seats.Names[i],
			Cards:      CardsToInfos(hand),
		}
	}

	payload := protocol.GameOverPayload{
		WinnerSeat:  s.Winner,
		IsLandlord:  s.Winner >= 0 && s.Winner == s.Landlord,
		YouWin:      s.Won(viewer),
		PlayerHands: hands,
	}
	if s.Winner >= 0 {
		payload.WinnerName = seats.Names[s.Winner]
	}
	return payload
}

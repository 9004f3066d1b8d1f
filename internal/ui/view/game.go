// Package view provides UI rendering functions.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/four-landlord/internal/ui/common"
)

// RenderGameRules renders the game rules.
func RenderGameRules() string {
	var sb strings.Builder

	sb.WriteString("【游戏目标】\n")
	sb.WriteString("地主：先出完手中所有牌\n")
	sb.WriteString("农民：三位农民中任意一人先出完牌，农民方获胜\n\n")

	sb.WriteString("【牌型说明】\n")
	sb.WriteString("• 单张：任意一张牌\n")
	sb.WriteString("• 对子：两张点数相同的牌\n")
	sb.WriteString("• 三张：三张点数相同的牌\n")
	sb.WriteString("• 三带一：三张 + 单牌\n")
	sb.WriteString("• 三带二：三张 + 对子\n")
	sb.WriteString("• 顺子：五张或更多连续的牌（王不能在顺子中）\n")
	sb.WriteString("• 连对：三对或更多连续的对子\n")
	sb.WriteString("• 飞机：两个或更多连续的三张，可带同样数量的单牌或对子\n")
	sb.WriteString("• 四带二：四张 + 两张单牌或两个对子\n")
	sb.WriteString("• 炸弹：四张点数相同的牌（可炸任何牌型）\n")
	sb.WriteString("• 王炸：大王 + 小王（最大的牌型）\n\n")

	sb.WriteString("【叫地主规则】\n")
	sb.WriteString("1. 每人 13 张牌，留 2 张底牌\n")
	sb.WriteString("2. 指定的玩家决定是否当地主\n")
	sb.WriteString("3. 不叫时从其余三人中随机选出地主\n")
	sb.WriteString("4. 地主获得底牌，共 15 张\n\n")

	sb.WriteString("【出牌规则】\n")
	sb.WriteString("1. 地主先出牌\n")
	sb.WriteString("2. 后续玩家必须出相同牌型且更大的牌，或选择不出\n")
	sb.WriteString("3. 其他人都不出时，最后出牌的玩家重新任意出牌\n")
	sb.WriteString("4. 炸弹和王炸可以压任何牌型\n\n")

	sb.WriteString("【输入】\n")
	sb.WriteString("• 点数：3-9、10、J、Q、K、A、2、B(小王)、R(大王)，如 33、10JQKA\n")
	sb.WriteString("• JOKER：王炸   PASS/P：不出   HINT：提示\n")
	sb.WriteString("• 叫地主：Y 叫 / N 不叫\n\n")

	sb.WriteString("【快捷键】\n")
	sb.WriteString("• C 或 TAB：切换记牌器\n")
	sb.WriteString("• ? 或 F1：显示/隐藏帮助\n")
	sb.WriteString("• ESC：退出\n")

	return common.BoxStyle.Render(sb.String())
}

// RulesView renders the full rules view.
func RulesView(width int) string {
	var sb strings.Builder

	title := common.TitleStyle("📖 游戏规则")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, title))
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, RenderGameRules()))
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, "按 ? 返回牌桌"))

	return sb.String()
}

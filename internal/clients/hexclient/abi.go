package hexclient

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const (
	methodGlobals         = "globals"
	methodAllocatedSupply = "allocatedSupply"
	methodCurrentDay      = "currentDay"
	methodStakeCount      = "stakeCount"
	methodStakeLists      = "stakeLists"
	methodDailyDataRange  = "dailyDataRange"
)

// read-only subset of the HEX contract ABI
const hexABIJSON = `[
	{"constant":true,"inputs":[],"name":"globals","outputs":[
		{"name":"lockedHeartsTotal","type":"uint72"},
		{"name":"nextStakeSharesTotal","type":"uint72"},
		{"name":"shareRate","type":"uint40"},
		{"name":"stakePenaltyTotal","type":"uint72"},
		{"name":"dailyDataCount","type":"uint16"},
		{"name":"stakeSharesTotal","type":"uint72"},
		{"name":"latestStakeId","type":"uint40"},
		{"name":"claimStats","type":"uint128"}
	],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[],"name":"allocatedSupply","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[],"name":"currentDay","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[{"name":"stakerAddr","type":"address"}],"name":"stakeCount","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[{"name":"","type":"address"},{"name":"","type":"uint256"}],"name":"stakeLists","outputs":[
		{"name":"stakeId","type":"uint40"},
		{"name":"stakedHearts","type":"uint72"},
		{"name":"stakeShares","type":"uint72"},
		{"name":"lockedDay","type":"uint16"},
		{"name":"stakedDays","type":"uint16"},
		{"name":"unlockedDay","type":"uint16"},
		{"name":"isAutoStake","type":"bool"}
	],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[{"name":"beginDay","type":"uint256"},{"name":"endDay","type":"uint256"}],"name":"dailyDataRange","outputs":[{"name":"list","type":"uint256[]"}],"stateMutability":"view","type":"function"},
	{"anonymous":false,"inputs":[
		{"indexed":false,"name":"data0","type":"uint256"},
		{"indexed":true,"name":"stakerAddr","type":"address"},
		{"indexed":true,"name":"stakeId","type":"uint40"}
	],"name":"StakeStart","type":"event"},
	{"anonymous":false,"inputs":[
		{"indexed":false,"name":"data0","type":"uint256"},
		{"indexed":false,"name":"data1","type":"uint256"},
		{"indexed":true,"name":"stakerAddr","type":"address"},
		{"indexed":true,"name":"stakeId","type":"uint40"}
	],"name":"StakeEnd","type":"event"}
]`

func parseHexABI() (abi.ABI, error) {
	return abi.JSON(strings.NewReader(hexABIJSON))
}

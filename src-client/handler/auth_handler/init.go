package auth_handler

import (
	"campusevents/src-client/utils"
)

// Init injects one "auth" command with multiple subcommands into the
// command registry in AppState.
func Init(as *utils.AppState) {
	localCmdInfo := make([]*utils.CmdInfo, 0)
	localCmdHandler := make(map[string]utils.CmdHandler)

	login(as, &localCmdInfo, localCmdHandler)
	logout(as, &localCmdInfo, localCmdHandler)
	signup(as, &localCmdInfo, localCmdHandler)
	forgotPassword(as, &localCmdInfo, localCmdHandler)
	whoami(as, &localCmdInfo, localCmdHandler)

	id := "auth"
	as.AddCmdInfo(id, &utils.CmdInfo{
		Name:        id,
		Usage:       "<subcommand>",
		Description: "Authentication commands.",
		Options:     localCmdInfo,
	})
	as.AddCmdHandler(id, as.Group(id, localCmdInfo, localCmdHandler))
}

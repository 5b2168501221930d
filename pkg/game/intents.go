package game

// Intent codes produced by the external voice classifier. The engine treats
// them as opaque tokens; the names here describe the player request each code
// stands for.
const (
	IntentLook          = "0000"
	IntentHatchRight    = "0001"
	IntentGoReadyRoom   = "0002"
	IntentGoBridge      = "0003"
	IntentCompass       = "0004"
	IntentLeave         = "0005"
	IntentWhereAreWe    = "0006"
	IntentGoEngineering = "0007"
	IntentGoEscapePod   = "0008"

	IntentOpenPanel    = "0009"
	IntentClosePanel   = "0010"
	IntentExaminePanel = "0011"

	IntentReadBook  = "0012"
	IntentTakeBook  = "0013"
	IntentInventory = "0014"

	IntentFightFire     = "0015"
	IntentExamineTable  = "0016"
	IntentExamineChairs = "0017"
	IntentExamineBunks  = "0018"
	IntentLookIntoFire  = "0019"

	IntentHelp           = "0020"
	IntentExamineHatch   = "0021"
	IntentWhoAreYou      = "0022"
	IntentExamineShip    = "0023"
	IntentCrew           = "0024"
	IntentDropBook       = "0025"
	IntentWait           = "0026"
	IntentClean          = "0027"
	IntentWhoIsLifeform  = "0028"
	IntentOfferFood      = "0029"
	IntentGameTalk       = "0030"
	IntentSilenceKlaxons = "0031"
	IntentOpenHatch      = "0032"
	IntentCloseHatch     = "0033"
	IntentSmotherFire    = "0034"

	IntentReadScreen       = "0035"
	IntentTransferComputer = "0036"
	IntentOpenScreen       = "0037"
	IntentTouchDave        = "0038"
	IntentRescueOscarHow   = "0039"
	IntentTakeDave         = "0040"
	IntentFluids           = "0041"
	IntentProfanity        = "0042"
	IntentDropDave         = "0043"
	IntentDropTools        = "0044"
	IntentOtherLifeforms   = "0045"

	IntentThroughHatch     = "0046"
	IntentBridgeHatch      = "0047"
	IntentEngineeringHatch = "0048"
	IntentOtherHatch       = "0049"

	IntentSave               = "0050"
	IntentLaunch             = "0051"
	IntentExitPod            = "0052"
	IntentMission            = "0053"
	IntentLaunchWithoutOscar = "0054"
	IntentTakeDaveToPod      = "0055"
	IntentUnmarkedHatch      = "0056"
	IntentExamineLights      = "0057"
	IntentLoad               = "0058"

	// OSCAR-addressed sub-codes, gated on the terminal having introduced
	// itself.
	IntentOscarAbout           = "000A"
	IntentOscarWhereDave       = "000B"
	IntentOscarWhatAreYou      = "000C"
	IntentOscarWhatHappened    = "000D"
	IntentOscarAboutDave       = "000E"
	IntentOscarWhatToDo        = "000F"
	IntentOscarSaveCleanerbot  = "000G"
	IntentOscarCrewGone        = "000H"
	IntentOscarDidYouHurtThem  = "000I"
	IntentOscarSmallTalk       = "000J"
	IntentOscarLeftBehind      = "000K"
	IntentOscarHowHaveYouBeen  = "000L"
	IntentOscarAboutCleanerbot = "000M"
	IntentOscarWhereWillWeGo   = "000N"
	IntentOscarHowToLaunch     = "000O"
	IntentOscarWhyNeedUs       = "000P"
	IntentOscarPriorities      = "000Q"

	// The classifier recognized an OSCAR-addressed message but could not make
	// sense of it.
	IntentOscarGarbled = "OSCAR-ERR"
)

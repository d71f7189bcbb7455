package cli

import (
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("remind.cli")

func configureLogging(verbosity int) {
	commonlog.Configure(verbosity, nil)
}

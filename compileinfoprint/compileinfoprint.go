// compileinfoprint is imported for the side effect of printing the
// compileinfo banner to os.Stderr.
package compileinfoprint

import "github.com/carbocation/snpassoc/compileinfo"

func init() {
	compileinfo.PrintToStdErr()
}

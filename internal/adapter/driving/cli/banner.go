package cli

import (
	"fmt"

	"github.com/diillson/aws-bill-analyzer-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
     ___        ______    ____  _ _ _      _                _                    
    / \ \      / / ___|  | __ )(_) | |    / \   _ __   __ _| |_   _ _______ _ __ 
   / _ \ \ /\ / /\___ \  |  _ \| | | |   / _ \ | '_ \ / _' | | | | |_  / _ \ '__|
  / ___ \ V  V /  ___) | | |_) | | | |  / ___ \| | | | (_| | | |_| |/ /  __/ |   
 /_/   \_\_/\_/  |____/  |____/|_|_|_| /_/   \_\_| |_|\__,_|_|\__, /___\___|_|   
                                                              |___/              
        `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))
	// Obtem a string formatada da versão através do pacote version
	fmt.Println(blue(fmt.Sprintf("AWS Bill Analyzer CLI (v%s)", version.FormatVersion())))
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Dewaeq/tetris-server/app"
	"github.com/Dewaeq/tetris-server/common/config"
	"github.com/Dewaeq/tetris-server/common/metrics"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tetris-server",
	Short: "tetris-server 匹配和对局协调服务",
	Long:  `tetris-server 管理房间 匹配玩家 同步开局数据 转发对局更新`,
	Run: func(cmd *cobra.Command, args []string) {
	},
}

var configFile string

func init() {
	rootCmd.Flags().StringVar(&configFile, "config", "application.yml", "app config yml file")
}

func main() {
	//1.加载配置
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
	config.InitConfig(configFile)
	//2.启动监控
	go func() {
		err := metrics.Serve(fmt.Sprintf("0.0.0.0:%d", config.Conf.MetricPort))
		if err != nil {
			panic(err)
		}
	}()
	//3.启动websocket和http服务
	err := app.Run(context.Background())
	if err != nil {
		log.Println(err)
		os.Exit(-1)
	}
}

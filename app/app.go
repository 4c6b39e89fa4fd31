package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dewaeq/tetris-server/common/config"
	"github.com/Dewaeq/tetris-server/common/logs"
	"github.com/Dewaeq/tetris-server/framework/net"
	"github.com/Dewaeq/tetris-server/game/room"
	"github.com/Dewaeq/tetris-server/route"
	"github.com/Dewaeq/tetris-server/router"
)

// Run 启动程序 启用日志 启动http服务和websocket服务 优雅启停
func Run(ctx context.Context) error {
	logs.InitLog(config.Conf.AppName)
	registry := room.NewRegistry(config.Conf.Room.MaxLength, config.Conf.Room.StartPolicy)

	go func() {
		//gin 启动 注册路由
		r := router.RegisterRouter(registry)
		if err := r.Run(fmt.Sprintf(":%d", config.Conf.HttpPort)); err != nil {
			logs.Fatal("gin run err:%v", err)
		}
	}()

	manager := net.NewManager()
	manager.ConnectorHandlers = route.Register(registry)
	go func() {
		manager.Run(fmt.Sprintf(":%d", config.Conf.WsPort))
	}()

	stop := func() {
		manager.Close()
		time.Sleep(3 * time.Second)
		logs.Info("stop app finish")
	}
	//遇到中断 退出 终止 挂断
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT, syscall.SIGHUP)
	for {
		select {
		case <-ctx.Done():
			stop()
			return nil
		case s := <-c:
			switch s {
			case syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT:
				stop()
				logs.Info("tetris-server app quit")
				return nil
			case syscall.SIGHUP:
				stop()
				logs.Info("hang up!! tetris-server app quit")
				return nil
			default:
				return nil
			}
		}
	}
}

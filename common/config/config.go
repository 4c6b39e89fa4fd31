package config

import (
	"fmt"
	"log"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

var Conf *Config

type Config struct {
	Log        LogConf  `mapstructure:"log"`
	AppName    string   `mapstructure:"appName"`
	HttpPort   int      `mapstructure:"httpPort"`
	WsPort     int      `mapstructure:"wsPort"`
	MetricPort int      `mapstructure:"metricPort"`
	Jwt        JwtConf  `mapstructure:"jwt"`
	Ws         WsConf   `mapstructure:"ws"`
	Room       RoomConf `mapstructure:"room"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
}

type JwtConf struct {
	Secret string `mapstructure:"secret"`
	Exp    int    `mapstructure:"exp"` //token有效期 单位小时
}

// WsConf websocket连接相关配置
type WsConf struct {
	MaxConnections int `mapstructure:"maxConnections"`
	ConnectionRate int `mapstructure:"connectionRate"`
}

// RoomConf 房间规则配置
type RoomConf struct {
	MaxLength   int    `mapstructure:"maxLength"`
	StartPolicy string `mapstructure:"startPolicy"`
}

// InitConfig 加载配置
func InitConfig(confFile string) {
	Conf = new(Config)
	v := viper.New()
	v.SetConfigFile(confFile)
	v.WatchConfig()
	v.OnConfigChange(func(in fsnotify.Event) {
		log.Println("配置文件被修改了")
		err := v.Unmarshal(&Conf)
		if err != nil {
			panic(fmt.Errorf("Unmarshal change config data,err:%v \n", err))
		}
	})
	err := v.ReadInConfig()
	if err != nil {
		panic(fmt.Errorf("读取配置文件出错,err:%v \n", err))
	}
	//解析
	err = v.Unmarshal(&Conf)
	if err != nil {
		panic(fmt.Errorf("Unmarshal config data,err:%v \n", err))
	}
}

package main

import (
	"fmt"
	"log"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// publisher pushes keypad activity to the controller broker: individual
// key-down events on bast/keypad/<id>/key and completed codes on
// bast/keypad/<id>/code.
type publisher struct {
	client mqtt.Client
	id     string
}

func connectPublisher(broker, id string) (*publisher, error) {
	opts := mqtt.NewClientOptions().AddBroker(broker).SetClientID("keypad-" + id)
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect %s: %w", broker, token.Error())
	}
	return &publisher{client: client, id: id}, nil
}

// publishKey is fire-and-forget; key events are advisory and a lost one
// only matters to whoever is watching the topic.
func (p *publisher) publishKey(key rune) {
	topic := fmt.Sprintf("bast/keypad/%s/key", p.id)
	if token := p.client.Publish(topic, 0, false, string(key)); token.Wait() && token.Error() != nil {
		log.Println("publish key:", token.Error())
	}
}

func (p *publisher) publishCode(code string) error {
	topic := fmt.Sprintf("bast/keypad/%s/code", p.id)
	token := p.client.Publish(topic, 1, false, code)
	token.Wait()
	return token.Error()
}

func (p *publisher) stop() {
	p.client.Disconnect(250)
}
